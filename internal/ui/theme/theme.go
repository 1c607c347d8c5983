// Package theme derives the lipgloss styling for the whole TUI from the
// user's settings. Build one Theme at startup and pass it to the screens
// that render with it.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizwoiz/internal/settings"
)

// Theme holds the resolved color palette and the shared styles built
// from it.
type Theme struct {
	// Palette
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color

	// Typography
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style

	// Layout
	Card lipgloss.Style

	// States
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
}

// New builds a Theme from settings. Brand colors come from the settings;
// surface and text colors follow the dark mode flag.
func New(s settings.Settings) *Theme {
	t := &Theme{
		Primary:   lipgloss.Color(s.PrimaryColor),
		Secondary: lipgloss.Color(s.SecondaryColor),
		Accent:    lipgloss.Color(s.AccentColor),
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#F43F5E"),
	}

	if s.DarkMode {
		t.Text = lipgloss.Color("#F8FAFC")
		t.TextDim = lipgloss.Color("#94A3B8")
		t.Bg = lipgloss.Color("#0F172A")
		t.BgCard = lipgloss.Color("#1E293B")
		t.Border = lipgloss.Color("#334155")
	} else {
		t.Text = lipgloss.Color("#0F172A")
		t.TextDim = lipgloss.Color("#64748B")
		t.Bg = lipgloss.Color("#F8FAFC")
		t.BgCard = lipgloss.Color("#E2E8F0")
		t.Border = lipgloss.Color("#CBD5E1")
	}

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Align(lipgloss.Center)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Align(lipgloss.Center)

	t.Body = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Hint = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Italic(true)

	t.Card = lipgloss.NewStyle().
		Background(t.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.Selected = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Unselected = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Correct = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	t.Incorrect = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	return t
}
