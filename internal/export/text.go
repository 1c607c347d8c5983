// Package export renders a generated question set to shareable formats:
// plain text for the clipboard and a printable PDF with an answer key.
package export

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizwoiz/internal/quizgen"
)

// Text renders questions as plain text, one block per question separated
// by a blank line:
//
//	1. What year did the French Revolution begin?
//	- 1789
//	- 1776
//	Answer: 1789
func Text(questions []quizgen.Question) string {
	blocks := make([]string, len(questions))
	for i, q := range questions {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
		for _, opt := range q.Options {
			fmt.Fprintf(&b, "- %s\n", opt)
		}
		fmt.Fprintf(&b, "Answer: %s", q.CorrectAnswer)
		blocks[i] = b.String()
	}
	return strings.Join(blocks, "\n\n")
}
