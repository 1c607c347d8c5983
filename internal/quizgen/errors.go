package quizgen

import "fmt"

// ErrMissingInput indicates the required input for the chosen mode was not
// provided. User-correctable; generation is not attempted.
type ErrMissingInput struct {
	Mode InputMode
}

func (e *ErrMissingInput) Error() string {
	return fmt.Sprintf("missing %s input", e.Mode)
}

// UserMessage returns the inline message shown next to the input form.
func (e *ErrMissingInput) UserMessage() string {
	switch e.Mode {
	case ModeTopic:
		return "Please enter a topic."
	case ModeText:
		return "Please paste some text."
	case ModeFile:
		return "Please upload a file."
	}
	return "Please provide input."
}
