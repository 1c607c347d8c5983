package quizgen

import "github.com/abhisek/quizwoiz/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
// The top level is an object (not a bare array) because OpenAI strict mode
// requires an object root.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A set of multiple choice quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "A unique identifier, e.g. 'q1'",
						},
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question stem",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct option text. Must match one of the options exactly.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief explanation of why the answer is correct",
						},
					},
					"required":             []any{"id", "question_text", "options", "correct_answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
