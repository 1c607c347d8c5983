package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/quizwoiz/internal/quizgen"
	"github.com/abhisek/quizwoiz/internal/router"
	"github.com/abhisek/quizwoiz/internal/screens/summary"
	"github.com/abhisek/quizwoiz/internal/settings"
	"github.com/abhisek/quizwoiz/internal/store"
	"github.com/abhisek/quizwoiz/internal/ui/theme"
)

// failingEventRepo rejects attempt writes. Only AppendAttempt is
// exercised; the embedded interface covers the rest of the method set.
type failingEventRepo struct {
	store.EventRepo
}

func (failingEventRepo) AppendAttempt(context.Context, store.AttemptEventData) error {
	return errors.New("database is locked")
}

func testQuestions() []quizgen.Question {
	return []quizgen.Question{
		{ID: "q1", Text: "What is 2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4"},
	}
}

func TestFinishProceedsWhenAttemptWriteFails(t *testing.T) {
	th := theme.New(settings.Default())
	s := New(th, testQuestions(), "Arithmetic", "General Knowledge", nil, failingEventRepo{})

	s.session.SubmitAnswer(0, "4")

	_, cmd := s.finish()
	if cmd == nil {
		t.Fatal("expected a command from finish()")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("finish() produced %T, want router.ReplaceScreenMsg", msg)
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("replacement screen is %T, want *summary.SummaryScreen", replace.Screen)
	}
}

func TestNewWithEmptyQuestionsShowsError(t *testing.T) {
	th := theme.New(settings.Default())
	s := New(th, nil, "Empty", "", nil, nil)

	if s.errMsg == "" {
		t.Error("expected an error message for an empty question set")
	}
	if s.session != nil {
		t.Error("expected no session for an empty question set")
	}
}
