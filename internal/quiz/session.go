// Package quiz implements the in-memory lifecycle of one quiz attempt:
// a fixed question list, locked-in answers, live progress, and scoring.
package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizwoiz/internal/quizgen"
)

// ErrEmptyQuestionSet indicates the generation collaborator succeeded but
// produced zero questions. Callers surface this as "try different input",
// distinct from a failed generation request.
var ErrEmptyQuestionSet = errors.New("question set is empty")

// State is the session lifecycle state.
type State int

const (
	// StateActive means at least one question is still unanswered.
	StateActive State = iota

	// StateComplete means every question has a locked answer. There is no
	// way back — a new quiz means a new Session.
	StateComplete
)

// Session owns the questions of one quiz attempt and the answers recorded
// so far. The question list is fixed at creation; the answer set grows
// monotonically, one entry per question, first answer wins.
//
// A Session belongs to the single UI flow that created it and is not safe
// for concurrent use.
type Session struct {
	id        string
	questions []quizgen.Question
	answers   map[int]string
	startedAt time.Time
}

// NewSession creates a Session over the given questions. It fails with
// ErrEmptyQuestionSet when the list is empty; a session never exists
// without at least one question.
func NewSession(questions []quizgen.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}

	qs := make([]quizgen.Question, len(questions))
	copy(qs, questions)

	return &Session{
		id:        uuid.NewString(),
		questions: qs,
		answers:   make(map[int]string),
		startedAt: time.Now(),
	}, nil
}

// ID returns the session UUID, used to group persisted attempt events.
func (s *Session) ID() string {
	return s.id
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Question returns the question at index. Panics if index is out of range.
func (s *Session) Question(index int) quizgen.Question {
	return s.questions[index]
}

// Questions returns the full question list. The returned slice must not be
// modified.
func (s *Session) Questions() []quizgen.Question {
	return s.questions
}

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// SubmitAnswer records option as the answer for the question at index.
//
// The first answer for an index is final: submitting again for the same
// index is a no-op, which is exactly the answer-locking behavior of the
// option buttons. The option string is recorded as-is — it need not be one
// of the question's own options; anything that doesn't match the correct
// answer simply scores as incorrect.
//
// An out-of-range index is a caller bug, not a user condition, and panics.
func (s *Session) SubmitAnswer(index int, option string) {
	if index < 0 || index >= len(s.questions) {
		panic(fmt.Sprintf("quiz: answer index %d out of range [0,%d)", index, len(s.questions)))
	}
	if _, locked := s.answers[index]; locked {
		return
	}
	s.answers[index] = option
}

// Answer returns the recorded answer for index and whether one exists.
func (s *Session) Answer(index int) (string, bool) {
	a, ok := s.answers[index]
	return a, ok
}

// IsComplete reports whether every question has a recorded answer.
func (s *Session) IsComplete() bool {
	return len(s.answers) == len(s.questions)
}

// State returns StateComplete once all questions are answered, StateActive
// before that.
func (s *Session) State() State {
	if s.IsComplete() {
		return StateComplete
	}
	return StateActive
}
