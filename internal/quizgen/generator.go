package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/quizwoiz/internal/llm"
)

// Generator produces quiz questions from a generation request.
//
// A nil error with an empty slice means the model produced no questions —
// a recoverable condition distinct from a failed request.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) ([]Question, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before mapping.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	ID            string   `json:"id"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Generate produces the full question list for one request.
func (g *LLMGenerator) Generate(ctx context.Context, req GenerationRequest) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	lreq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	if req.Mode == ModeFile && req.File != nil {
		lreq.Attachment = &llm.Attachment{
			MediaType: req.File.MediaType,
			Data:      req.File.Data,
		}
	}

	resp, err := g.provider.Generate(ctx, lreq)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	questions := make([]Question, 0, len(raw.Questions))
	for i, q := range raw.Questions {
		id := q.ID
		if id == "" {
			id = fmt.Sprintf("q%d", i+1)
		}
		questions = append(questions, Question{
			ID:            id,
			Text:          q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	return questions, nil
}
