package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/quizwoiz/internal/llm"
	"github.com/abhisek/quizwoiz/internal/quizgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMEvents_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, llm.RequestEvent{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "quiz-gen",
			InputTokens:  100 + i,
			OutputTokens: 200,
			LatencyMs:    int64(50 * (i + 1)),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("order: %d then %d", events[0].Sequence, events[1].Sequence)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited len = %d, want 2", len(limited))
	}
}

func TestLLMEvents_GetByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, llm.RequestEvent{
		Provider:     "openai",
		Model:        "gpt-4o",
		Purpose:      "quiz-gen",
		Success:      false,
		ErrorMessage: "rate limited",
		RequestBody:  "[user]\nmake a quiz\n",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.ErrorMessage != "rate limited" || e.RequestBody == "" {
		t.Errorf("record = %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestLLMUsage_Aggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []llm.RequestEvent{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 300, OutputTokens: 150, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "title-gen", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, Success: true},
	}
	for i, d := range appends {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("purposes = %d, want 2", len(stats))
	}
	// Sorted by purpose name.
	if stats[0].Purpose != "quiz-gen" || stats[0].Calls != 2 || stats[0].InputTokens != 400 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[0].AvgLatencyMs != 200 {
		t.Errorf("avg latency = %d, want 200", stats[0].AvgLatencyMs)
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("models = %d, want 2", len(usage))
	}
}

func TestAttempts_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAttempt(ctx, AttemptEventData{
		SessionID:    "sess-1",
		Title:        "The French Revolution",
		Category:     "History",
		Total:        10,
		Correct:      7,
		Percentage:   70,
		DurationSecs: 180,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	attempts, err := repo.QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("len = %d, want 1", len(attempts))
	}
	a := attempts[0]
	if a.Percentage != 70 || a.Title != "The French Revolution" {
		t.Errorf("attempt = %+v", a)
	}
}

func TestQuizRepo_SaveGetListDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, title := range []string{"First", "Second"} {
		err := repo.Save(ctx, quizgen.Quiz{
			ID:       "quiz-" + title,
			Title:    title,
			Category: "Science",
			Questions: []quizgen.Question{{
				ID:            "q1",
				Text:          "What gas do plants absorb?",
				Options:       []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Helium"},
				CorrectAnswer: "Carbon dioxide",
			}},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %s: %v", title, err)
		}
	}

	quizzes, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("len = %d, want 2", len(quizzes))
	}
	// Newest first.
	if quizzes[0].Title != "Second" {
		t.Errorf("quizzes[0].Title = %q", quizzes[0].Title)
	}

	got, err := repo.Get(ctx, "quiz-First")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || len(got.Questions) != 1 {
		t.Fatalf("got = %+v", got)
	}
	if got.Questions[0].CorrectAnswer != "Carbon dioxide" {
		t.Errorf("question = %+v", got.Questions[0])
	}

	deleted, err := repo.Delete(ctx, "quiz-First")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report true")
	}
	if again, _ := repo.Delete(ctx, "quiz-First"); again {
		t.Error("second delete should report false")
	}

	missing, err := repo.Get(ctx, "quiz-First")
	if err != nil {
		t.Fatalf("get deleted: %v", err)
	}
	if missing != nil {
		t.Error("expected nil after delete")
	}
}
