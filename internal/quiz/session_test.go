package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/quizwoiz/internal/quizgen"
)

// fourQuestions returns a quiz with correct answers B, B, A, C.
func fourQuestions() []quizgen.Question {
	answers := []string{"B", "B", "A", "C"}
	qs := make([]quizgen.Question, 4)
	for i := range qs {
		qs[i] = quizgen.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Text:          fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: answers[i],
		}
	}
	return qs
}

func TestNewSession_Empty(t *testing.T) {
	_, err := NewSession(nil)
	if !errors.Is(err, ErrEmptyQuestionSet) {
		t.Fatalf("err = %v, want ErrEmptyQuestionSet", err)
	}
}

func TestNewSession_Initial(t *testing.T) {
	s, err := NewSession(fourQuestions())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if got := s.Progress(); got.Answered != 0 || got.Total != 4 {
		t.Errorf("Progress = %+v, want {0 4}", got)
	}
	if s.State() != StateActive {
		t.Errorf("State = %v, want StateActive", s.State())
	}
	if s.ID() == "" {
		t.Error("session ID should not be empty")
	}
}

func TestSubmitAnswer_Locking(t *testing.T) {
	s, _ := NewSession(fourQuestions())

	s.SubmitAnswer(0, "B")
	if got := s.Progress().Answered; got != 1 {
		t.Fatalf("Answered = %d after first submission, want 1", got)
	}

	// Second submission to the same index is a no-op: first answer wins.
	s.SubmitAnswer(0, "D")
	if got := s.Progress().Answered; got != 1 {
		t.Errorf("Answered = %d after repeat submission, want 1", got)
	}
	if a, ok := s.Answer(0); !ok || a != "B" {
		t.Errorf("Answer(0) = %q,%v, want B,true", a, ok)
	}
}

func TestSubmitAnswer_ArbitraryOption(t *testing.T) {
	s, _ := NewSession(fourQuestions())

	// The contract accepts any string; it just never scores as correct
	// unless it matches exactly.
	s.SubmitAnswer(1, "not an option")
	if a, ok := s.Answer(1); !ok || a != "not an option" {
		t.Errorf("Answer(1) = %q,%v", a, ok)
	}
	if got := s.Score().Correct; got != 0 {
		t.Errorf("Correct = %d, want 0", got)
	}
}

func TestSubmitAnswer_OutOfRangePanics(t *testing.T) {
	s, _ := NewSession(fourQuestions())
	for _, idx := range []int{-1, 4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SubmitAnswer(%d) did not panic", idx)
				}
			}()
			s.SubmitAnswer(idx, "A")
		}()
	}
}

func TestCompletion(t *testing.T) {
	s, _ := NewSession(fourQuestions())

	for i := 0; i < 4; i++ {
		if s.IsComplete() {
			t.Fatalf("complete after %d answers", i)
		}
		s.SubmitAnswer(i, "A")
	}

	if !s.IsComplete() {
		t.Fatal("session should be complete")
	}
	if s.State() != StateComplete {
		t.Errorf("State = %v, want StateComplete", s.State())
	}
	p := s.Progress()
	if p.Answered != p.Total {
		t.Errorf("Progress = %+v, want answered == total", p)
	}
}

func TestScore_Example(t *testing.T) {
	// Correct answers B, B, A, C; user submits B, A, A, D -> 2/4 = 50%.
	s, _ := NewSession(fourQuestions())
	for i, a := range []string{"B", "A", "A", "D"} {
		s.SubmitAnswer(i, a)
	}

	got := s.Score()
	want := Score{Correct: 2, Total: 4, Percentage: 50}
	if got != want {
		t.Errorf("Score = %+v, want %+v", got, want)
	}
}

func TestScore_CaseAndWhitespaceSensitive(t *testing.T) {
	s, _ := NewSession(fourQuestions())
	s.SubmitAnswer(0, "b")
	s.SubmitAnswer(1, "B ")
	if got := s.Score().Correct; got != 0 {
		t.Errorf("Correct = %d, want 0 (exact match only)", got)
	}
}

func TestScore_MalformedCorrectAnswer(t *testing.T) {
	// correctAnswer matches none of the options: the question can never
	// score as correct, by design.
	qs := []quizgen.Question{{
		ID:            "q1",
		Text:          "Broken?",
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: "E",
	}}
	for _, opt := range qs[0].Options {
		s, _ := NewSession(qs)
		s.SubmitAnswer(0, opt)
		if s.Score().Correct != 0 {
			t.Errorf("option %q scored as correct", opt)
		}
	}
}

func TestPercentage_Rounding(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{3, 7, 43},  // 42.857... rounds up
		{1, 3, 33},  // 33.333... rounds down
		{1, 2, 50},  //
		{5, 8, 63},  // 62.5 rounds half up
		{0, 5, 0},   //
		{5, 5, 100}, //
		{0, 0, 0},   // zero-total guard, never a division error
	}
	for _, tc := range cases {
		if got := percentage(tc.correct, tc.total); got != tc.want {
			t.Errorf("percentage(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}
