package builder

import "github.com/abhisek/quizwoiz/internal/quizgen"

// quizReadyMsg is sent when generation finishes successfully.
// Seq identifies the generation attempt so superseded results are dropped.
type quizReadyMsg struct {
	Seq       int
	Questions []quizgen.Question
}

// quizGenFailedMsg is sent when generation fails.
type quizGenFailedMsg struct {
	Seq int
	Err error
}
