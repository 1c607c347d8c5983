package quiz

import (
	"time"

	"github.com/abhisek/quizwoiz/internal/quizgen"
)

// AnswerRecord pairs a question with the user's locked answer for the
// summary view.
type AnswerRecord struct {
	Question quizgen.Question
	Answer   string
	Correct  bool
}

// Summary holds the data displayed once a session is complete.
type Summary struct {
	Score    Score
	Duration time.Duration
	Records  []AnswerRecord
}

// BuildSummary creates a Summary from the session's current state. It is
// normally called at completion but works on a partial session too — an
// unanswered question appears with an empty Answer.
func BuildSummary(s *Session) *Summary {
	records := make([]AnswerRecord, s.Len())
	for i, q := range s.Questions() {
		a, _ := s.Answer(i)
		records[i] = AnswerRecord{
			Question: q,
			Answer:   a,
			Correct:  a == q.CorrectAnswer,
		}
	}
	return &Summary{
		Score:    s.Score(),
		Duration: time.Since(s.StartedAt()),
		Records:  records,
	}
}

// Verdict returns the encouragement line for a final percentage.
func Verdict(percentage int) string {
	switch {
	case percentage >= 80:
		return "Excellent work!"
	case percentage >= 50:
		return "Good effort!"
	default:
		return "Keep practicing!"
	}
}
