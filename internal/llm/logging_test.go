package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// captureRecorder collects events in memory and can simulate write
// failures.
type captureRecorder struct {
	events []RequestEvent
	err    error
}

func (c *captureRecorder) AppendLLMRequest(_ context.Context, data RequestEvent) error {
	c.events = append(c.events, data)
	return c.err
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	rec := &captureRecorder{}
	p := WithLogging(mock, rec)

	ctx := WithPurpose(context.Background(), "quiz-gen")
	req := Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.events))
	}
	e := rec.events[0]
	if !e.Success {
		t.Error("Success = false, want true")
	}
	if e.Purpose != "quiz-gen" {
		t.Errorf("Purpose = %q, want quiz-gen", e.Purpose)
	}
	if e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", e.InputTokens, e.OutputTokens)
	}
	if e.Model != "mock" {
		t.Errorf("Model = %q, want mock", e.Model)
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Errorf("ResponseBody = %q", e.ResponseBody)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	rec := &captureRecorder{}
	p := WithLogging(mock, rec)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected provider error")
	}

	if len(rec.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.events))
	}
	e := rec.events[0]
	if e.Success {
		t.Error("Success = true, want false")
	}
	if e.ErrorMessage != "boom" {
		t.Errorf("ErrorMessage = %q, want boom", e.ErrorMessage)
	}
	if e.Purpose != "unknown" {
		t.Errorf("Purpose = %q, want unknown", e.Purpose)
	}
}

func TestLoggingRecorderFailureDoesNotFailGeneration(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`[]`)})
	rec := &captureRecorder{err: errors.New("disk full")}
	p := WithLogging(mock, rec)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
}
