package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/abhisek/quizwoiz/internal/quizgen"
)

// Copy places the plain-text rendering of the questions on the system
// clipboard.
func Copy(questions []quizgen.Question) error {
	if err := clipboard.WriteAll(Text(questions)); err != nil {
		return fmt.Errorf("copying quiz to clipboard: %w", err)
	}
	return nil
}
