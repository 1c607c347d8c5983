// Package home renders the landing screen with the main menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizwoiz/internal/quizgen"
	"github.com/abhisek/quizwoiz/internal/router"
	"github.com/abhisek/quizwoiz/internal/screen"
	"github.com/abhisek/quizwoiz/internal/screens/builder"
	"github.com/abhisek/quizwoiz/internal/screens/history"
	"github.com/abhisek/quizwoiz/internal/settings"
	"github.com/abhisek/quizwoiz/internal/store"
	"github.com/abhisek/quizwoiz/internal/ui/components"
	"github.com/abhisek/quizwoiz/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	th       *theme.Theme
	settings settings.Settings
	menu     components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(th *theme.Theme, cfg settings.Settings, generator quizgen.Generator, quizRepo store.QuizRepo, eventRepo store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "CREATE A QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: builder.New(th, cfg, generator, quizRepo, eventRepo),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: history.New(th, quizRepo, eventRepo),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		th:       th,
		settings: cfg,
		menu:     components.NewMenu(th, items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(h.th.Title.Width(width).Render(h.settings.AppName))
	b.WriteString("\n")
	b.WriteString(h.th.Subtitle.Width(width).Render("Create Engaging Quizzes in Seconds"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(h.th.TextDim).
		Render("Turn a topic, pasted notes, or a file into\na multiple-choice quiz with answers and explanations."))
	b.WriteString("\n\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}
