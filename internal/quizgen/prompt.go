package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a professional quiz generator. Create valid, challenging, and accurate multiple choice questions.

Rules:
- Every question has exactly 4 options where exactly one is correct.
- The correct_answer field must match the text of one option exactly.
- Distractors should be plausible, not obviously wrong.
- Question IDs are "q1", "q2", ... in order.
- Include a brief explanation of why the answer is correct.
- Return ONLY JSON conforming to the provided schema.`

// buildUserMessage constructs the user message for a generation request.
// The wording per mode is deliberate: topic questions range freely over the
// subject, text and file questions must stay strictly within the source.
func buildUserMessage(req GenerationRequest) string {
	var b strings.Builder

	switch req.Mode {
	case ModeTopic:
		fmt.Fprintf(&b, "Generate %d multiple choice questions (MCQs) about the topic: %q.", req.Count, req.Content)
	case ModeText:
		fmt.Fprintf(&b, "Generate %d multiple choice questions (MCQs) based strictly on the following text:\n\n%s", req.Count, req.Content)
	case ModeFile:
		fmt.Fprintf(&b, "Analyze the attached file and generate %d multiple choice questions (MCQs) based strictly on its content.", req.Count)
	}

	fmt.Fprintf(&b, "\n\nCategory: %s.", req.Category)

	return b.String()
}
