package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizwoiz/internal/llm"
)

const validQuizJSON = `{
	"questions": [
		{
			"id": "q1",
			"question_text": "What year did the French Revolution begin?",
			"options": ["1789", "1776", "1804", "1815"],
			"correct_answer": "1789",
			"explanation": "The storming of the Bastille took place in 1789."
		},
		{
			"id": "",
			"question_text": "Who was executed in 1793?",
			"options": ["Louis XIV", "Louis XV", "Louis XVI", "Napoleon"],
			"correct_answer": "Louis XVI",
			"explanation": "Louis XVI was guillotined in January 1793."
		}
	]
}`

func TestGenerate_MapsQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validQuizJSON)})
	gen := New(mock, DefaultConfig())

	req, err := BuildRequest(ModeTopic, "The French Revolution", 2, "History", nil)
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}

	questions, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len = %d, want 2", len(questions))
	}
	if questions[0].CorrectAnswer != "1789" {
		t.Errorf("CorrectAnswer = %q", questions[0].CorrectAnswer)
	}
	// Blank IDs are filled positionally.
	if questions[1].ID != "q2" {
		t.Errorf("ID = %q, want q2", questions[1].ID)
	}
}

func TestGenerate_PromptPerMode(t *testing.T) {
	cases := []struct {
		mode InputMode
		want string
	}{
		{ModeTopic, "about the topic"},
		{ModeText, "based strictly on the following text"},
	}
	for _, tc := range cases {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)})
		gen := New(mock, DefaultConfig())

		req, _ := BuildRequest(tc.mode, "photosynthesis", 5, "Science", nil)
		if _, err := gen.Generate(context.Background(), req); err != nil {
			t.Fatalf("%s: %v", tc.mode, err)
		}

		sent := mock.Calls[0].Messages[0].Content
		if !strings.Contains(sent, tc.want) {
			t.Errorf("%s prompt = %q, missing %q", tc.mode, sent, tc.want)
		}
		if !strings.Contains(sent, "Category: Science") {
			t.Errorf("%s prompt missing category", tc.mode)
		}
	}
}

func TestGenerate_FileAttachment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)})
	gen := New(mock, DefaultConfig())

	file := &FilePayload{Name: "slides.png", MediaType: "image/png", Data: []byte{1, 2, 3}}
	req, _ := BuildRequest(ModeFile, "", 5, "Technology", file)

	if _, err := gen.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	att := mock.Calls[0].Attachment
	if att == nil || att.MediaType != "image/png" {
		t.Fatalf("Attachment = %+v, want image/png payload", att)
	}
}

func TestGenerate_EmptyQuestionsIsNotAnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)})
	gen := New(mock, DefaultConfig())

	req, _ := BuildRequest(ModeTopic, "anything", 5, "General Knowledge", nil)
	questions, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("zero questions must be a success, got %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("len = %d, want 0", len(questions))
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	req, _ := BuildRequest(ModeTopic, "anything", 5, "General Knowledge", nil)
	_, err := gen.Generate(context.Background(), req)

	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want wrapped ErrProviderUnavailable", err)
	}
}
