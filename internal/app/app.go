// Package app wires the root Bubble Tea model: settings, theme, screen
// router, and the shared header/footer frame.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizwoiz/internal/quizgen"
	"github.com/abhisek/quizwoiz/internal/router"
	"github.com/abhisek/quizwoiz/internal/screen"
	"github.com/abhisek/quizwoiz/internal/screens/home"
	"github.com/abhisek/quizwoiz/internal/settings"
	"github.com/abhisek/quizwoiz/internal/store"
	"github.com/abhisek/quizwoiz/internal/ui/layout"
	"github.com/abhisek/quizwoiz/internal/ui/theme"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	settings settings.Settings
	th       *theme.Theme
	router   *router.Router
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(cfg settings.Settings, generator quizgen.Generator, quizRepo store.QuizRepo, eventRepo store.EventRepo) AppModel {
	th := theme.New(cfg)
	homeScreen := home.New(th, cfg, generator, quizRepo, eventRepo)
	return AppModel{
		settings: cfg,
		th:       th,
		router:   router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				if c, ok := m.router.Active().(screen.Cleaner); ok {
					c.Cleanup()
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.th, m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(m.th, m.settings.AppName, title, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(m.th, footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to the
// stack-position defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(cfg settings.Settings, generator quizgen.Generator, quizRepo store.QuizRepo, eventRepo store.EventRepo) error {
	p := tea.NewProgram(newAppModel(cfg, generator, quizRepo, eventRepo))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
