// Package quiz implements the screen for taking a generated quiz, one
// question at a time with locked-in answers and immediate feedback.
package quiz

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	quizsession "github.com/abhisek/quizwoiz/internal/quiz"
	"github.com/abhisek/quizwoiz/internal/quizgen"
	"github.com/abhisek/quizwoiz/internal/router"
	"github.com/abhisek/quizwoiz/internal/screen"
	"github.com/abhisek/quizwoiz/internal/screens/summary"
	"github.com/abhisek/quizwoiz/internal/store"
	"github.com/abhisek/quizwoiz/internal/ui/components"
	"github.com/abhisek/quizwoiz/internal/ui/layout"
	"github.com/abhisek/quizwoiz/internal/ui/theme"
)

// QuizScreen drives one quiz session from first question to summary.
type QuizScreen struct {
	th        *theme.Theme
	session   *quizsession.Session
	title     string
	category  string
	quizRepo  store.QuizRepo
	eventRepo store.EventRepo

	current      int
	mc           components.MultiChoice
	showFeedback bool
	errMsg       string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a freshly generated question set.
func New(th *theme.Theme, questions []quizgen.Question, title, category string, quizRepo store.QuizRepo, eventRepo store.EventRepo) *QuizScreen {
	s := &QuizScreen{
		th:        th,
		title:     title,
		category:  category,
		quizRepo:  quizRepo,
		eventRepo: eventRepo,
	}

	session, err := quizsession.NewSession(questions)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.session = session
	s.mc = components.NewMultiChoice(th, session.Question(0).Options, session.Question(0).CorrectAnswer)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-4/Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showFeedback {
		return s.advance()
	}

	wasSubmitted := s.mc.Submitted
	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(kmsg)
	if !wasSubmitted && s.mc.Submitted {
		s.session.SubmitAnswer(s.current, s.mc.Chosen())
		s.showFeedback = true
	}
	return s, cmd
}

// advance moves to the next unanswered question, or ends the session
// once every answer is locked.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.showFeedback = false

	if s.session.IsComplete() {
		return s.finish()
	}

	s.current++
	q := s.session.Question(s.current)
	s.mc = components.NewMultiChoice(s.th, q.Options, q.CorrectAnswer)
	return s, nil
}

// finish records the attempt and swaps in the summary screen.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	sum := quizsession.BuildSummary(s.session)

	if s.eventRepo != nil {
		// A failed attempt write must not block the summary.
		err := s.eventRepo.AppendAttempt(context.Background(), store.AttemptEventData{
			SessionID:    s.session.ID(),
			Title:        s.title,
			Category:     s.category,
			Total:        sum.Score.Total,
			Correct:      sum.Score.Correct,
			Percentage:   sum.Score.Percentage,
			DurationSecs: int(sum.Duration / time.Second),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record attempt: %v\n", err)
		}
	}

	th, title, category := s.th, s.title, s.category
	questions, quizRepo := s.session.Questions(), s.quizRepo
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(th, sum, title, category, questions, quizRepo),
		}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			s.th.Incorrect.Render(s.errMsg))
	}

	q := s.session.Question(s.current)
	progress := s.session.Progress()

	bar := components.NewProgressBar(s.th, "", float64(progress.Answered)/float64(progress.Total), false, min(width-8, 72)).View()

	header := s.th.Hint.Render(fmt.Sprintf("Question %d of %d", s.current+1, progress.Total))
	question := s.th.Body.Bold(true).Width(min(width-8, 72)).Render(q.Text)

	content := bar + "\n\n" + header + "\n\n" + question + "\n\n" + s.mc.View()

	if s.showFeedback {
		content += "\n" + s.renderFeedback(q)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.th.Border).
		Padding(1, 2).
		Width(min(width-4, 80)).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *QuizScreen) renderFeedback(q quizgen.Question) string {
	var out string
	if s.mc.IsCorrect() {
		out = s.th.Correct.Render("Correct Answer!")
	} else {
		out = s.th.Incorrect.Render("Incorrect") + "\n" +
			s.th.Body.Render("The correct answer is: "+q.CorrectAnswer)
	}
	if q.Explanation != "" {
		out += "\n" + s.th.Hint.Render(q.Explanation)
	}
	return out
}
