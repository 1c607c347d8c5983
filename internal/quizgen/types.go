package quizgen

import "time"

// InputMode selects the source material for quiz generation.
type InputMode string

const (
	// ModeTopic generates questions about a short topic phrase.
	ModeTopic InputMode = "topic"

	// ModeText generates questions strictly from pasted text.
	ModeText InputMode = "text"

	// ModeFile generates questions from an uploaded file's contents.
	ModeFile InputMode = "file"
)

// FilePayload carries the raw bytes of a source file and its declared
// media type. Required when the input mode is ModeFile.
type FilePayload struct {
	// Name is the original file name, used for display only.
	Name string

	// MediaType is the declared MIME type, e.g. "application/pdf".
	MediaType string

	// Data is the raw file content.
	Data []byte
}

// GenerationRequest is the normalized request sent to the generation
// collaborator. Build one with BuildRequest rather than by hand so the
// per-mode invariants hold.
type GenerationRequest struct {
	// Mode is the input channel the content came from.
	Mode InputMode

	// Content is the topic phrase or pasted text. Empty when Mode is
	// ModeFile — the file payload replaces it.
	Content string

	// File is the source file. Set iff Mode is ModeFile.
	File *FilePayload

	// Count is the desired number of questions. The UI offers 5/10/15/20
	// but any positive integer is accepted.
	Count int

	// Category is the quiz category label shown to the model.
	Category string
}

// Question is a single generated multiple-choice question.
// Immutable once produced by the generator.
type Question struct {
	// ID is unique within one generated quiz, e.g. "q1".
	ID string `json:"id"`

	// Text is the question stem.
	Text string `json:"questionText"`

	// Options holds the four answer options in display order.
	Options []string `json:"options"`

	// CorrectAnswer is the text of the correct option. The generator asks
	// the model to make it match one option exactly; that is not enforced
	// here — a mismatched answer simply never scores as correct.
	CorrectAnswer string `json:"correctAnswer"`

	// Explanation is an optional note on why the answer is correct.
	Explanation string `json:"explanation,omitempty"`
}

// Quiz is a generated question set with its metadata, as persisted by the
// store and rendered by the export surfaces.
type Quiz struct {
	ID        string
	Title     string
	Category  string
	Questions []Question
	CreatedAt time.Time
}
