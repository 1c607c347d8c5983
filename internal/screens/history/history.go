// Package history lists saved quizzes and past attempts, and lets the
// user retake or delete a saved quiz.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizwoiz/internal/quizgen"
	"github.com/abhisek/quizwoiz/internal/router"
	"github.com/abhisek/quizwoiz/internal/screen"
	quizscreen "github.com/abhisek/quizwoiz/internal/screens/quiz"
	"github.com/abhisek/quizwoiz/internal/store"
	"github.com/abhisek/quizwoiz/internal/ui/layout"
	"github.com/abhisek/quizwoiz/internal/ui/theme"
)

const listLimit = 20

// historyLoadedMsg carries the loaded history data.
type historyLoadedMsg struct {
	Quizzes  []quizgen.Quiz
	Attempts []store.AttemptRecord
	Err      error
}

// HistoryScreen shows saved quizzes and recent attempts.
type HistoryScreen struct {
	th        *theme.Theme
	quizRepo  store.QuizRepo
	eventRepo store.EventRepo

	loaded   bool
	quizzes  []quizgen.Quiz
	attempts []store.AttemptRecord
	selected int
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(th *theme.Theme, quizRepo store.QuizRepo, eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		th:        th,
		quizRepo:  quizRepo,
		eventRepo: eventRepo,
	}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return h.load()
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	if len(h.quizzes) == 0 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Retake"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) load() tea.Cmd {
	quizRepo, eventRepo := h.quizRepo, h.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		quizzes, err := quizRepo.List(ctx, listLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		attempts, err := eventRepo.QueryAttempts(ctx, store.QueryOpts{Limit: listLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Quizzes: quizzes, Attempts: attempts}
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.quizzes = msg.Quizzes
		h.attempts = msg.Attempts
		if h.selected >= len(h.quizzes) {
			h.selected = 0
		}
		return h, nil

	case tea.KeyMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if h.errMsg != "" {
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.quizzes)-1 {
			h.selected++
		}
	case "enter":
		if h.selected < len(h.quizzes) {
			q := h.quizzes[h.selected]
			th, quizRepo, eventRepo := h.th, h.quizRepo, h.eventRepo
			return h, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(th, q.Questions, q.Title, q.Category, quizRepo, eventRepo),
				}
			}
		}
	case "d":
		if h.selected < len(h.quizzes) {
			id := h.quizzes[h.selected].ID
			if _, err := h.quizRepo.Delete(context.Background(), id); err != nil {
				h.errMsg = err.Error()
				return h, nil
			}
			return h, h.load()
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			h.th.Incorrect.Render(h.errMsg))
	}
	if !h.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			h.th.Hint.Render("Loading..."))
	}

	var b strings.Builder

	b.WriteString(h.th.Subtitle.Render("Saved Quizzes"))
	b.WriteString("\n\n")
	if len(h.quizzes) == 0 {
		b.WriteString(h.th.Hint.Render("  No saved quizzes yet."))
		b.WriteString("\n")
	}
	for i, q := range h.quizzes {
		line := fmt.Sprintf("%-40s  %-16s  %2d questions  %s",
			truncate(q.Title, 40), q.Category, len(q.Questions),
			q.CreatedAt.Local().Format("2006-01-02"))
		if i == h.selected {
			b.WriteString(h.th.Selected.Render("▸ " + line))
		} else {
			b.WriteString(h.th.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(h.th.Subtitle.Render("Recent Attempts"))
	b.WriteString("\n\n")
	if len(h.attempts) == 0 {
		b.WriteString(h.th.Hint.Render("  No attempts recorded yet."))
		b.WriteString("\n")
	}
	for _, a := range h.attempts {
		line := fmt.Sprintf("  %-40s  %2d/%2d  %3d%%  %s",
			truncate(a.Title, 40), a.Correct, a.Total, a.Percentage,
			a.Timestamp.Local().Format("2006-01-02 15:04"))
		style := h.th.Body
		if a.Percentage >= 80 {
			style = h.th.Correct
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		Padding(1, 2).
		Width(min(width-4, 90)).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
