// Package summary shows the final score of a quiz run and offers the
// export and save actions.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/quizwoiz/internal/export"
	"github.com/abhisek/quizwoiz/internal/quiz"
	"github.com/abhisek/quizwoiz/internal/quizgen"
	"github.com/abhisek/quizwoiz/internal/router"
	"github.com/abhisek/quizwoiz/internal/screen"
	"github.com/abhisek/quizwoiz/internal/store"
	"github.com/abhisek/quizwoiz/internal/ui/components"
	"github.com/abhisek/quizwoiz/internal/ui/layout"
	"github.com/abhisek/quizwoiz/internal/ui/theme"
)

// SummaryScreen displays the quiz summary and export actions.
type SummaryScreen struct {
	th        *theme.Theme
	summary   *quiz.Summary
	title     string
	category  string
	questions []quizgen.Question
	quizRepo  store.QuizRepo

	menu      components.Menu
	statusMsg string
	saved     bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(th *theme.Theme, sum *quiz.Summary, title, category string, questions []quizgen.Question, quizRepo store.QuizRepo) *SummaryScreen {
	s := &SummaryScreen{
		th:        th,
		summary:   sum,
		title:     title,
		category:  category,
		questions: questions,
		quizRepo:  quizRepo,
	}

	items := []components.MenuItem{
		{Label: "Save Quiz", Action: func() tea.Cmd { return s.saveQuiz() }},
		{Label: "Export PDF", Action: func() tea.Cmd { return s.exportPDF() }},
		{Label: "Copy to Clipboard", Action: func() tea.Cmd { return s.copyText() }},
		{Label: "Done", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	}
	s.menu = components.NewMenu(th, items)
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) saveQuiz() tea.Cmd {
	if s.quizRepo == nil {
		s.statusMsg = "No database available."
		return nil
	}
	if s.saved {
		s.statusMsg = "Already saved."
		return nil
	}
	err := s.quizRepo.Save(context.Background(), quizgen.Quiz{
		ID:        uuid.NewString(),
		Title:     s.title,
		Category:  s.category,
		Questions: s.questions,
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.statusMsg = "Save failed: " + err.Error()
		return nil
	}
	s.saved = true
	s.statusMsg = "Quiz saved."
	return nil
}

func (s *SummaryScreen) exportPDF() tea.Cmd {
	if err := export.SavePDF("quiz.pdf", s.title, s.questions); err != nil {
		s.statusMsg = "PDF export failed: " + err.Error()
		return nil
	}
	s.statusMsg = "Saved quiz.pdf in the current directory."
	return nil
}

func (s *SummaryScreen) copyText() tea.Cmd {
	if err := export.Copy(s.questions); err != nil {
		s.statusMsg = "Copy failed: " + err.Error()
		return nil
	}
	s.statusMsg = "Quiz copied to clipboard!"
	return nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(s.th.Title.Width(width).Render("Quiz Complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(s.th.Subtitle.Width(width).Render(
		fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("You answered %d out of %d questions correctly. %s",
		sum.Score.Correct, sum.Score.Total, quiz.Verdict(sum.Score.Percentage))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(s.th.Text).
		Render(statsLine))
	b.WriteString("\n")
	b.WriteString(s.th.Title.Width(width).Render(fmt.Sprintf("%d%%", sum.Score.Percentage)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(s.th.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Per-question results.
	for i, r := range sum.Records {
		mark := s.th.Correct.Render("✓")
		if !r.Correct {
			mark = s.th.Incorrect.Render("✗")
		}
		text := r.Question.Text
		if len(text) > 56 {
			text = text[:56] + "…"
		}
		line := fmt.Sprintf("%s  %d. %s", mark, i+1, text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.th.Body.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	if s.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(s.th.Hint.Width(width).Align(lipgloss.Center).Render(s.statusMsg))
	}

	return b.String()
}
