package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizwoiz/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Once an option is chosen
// the component locks: further input is ignored and the view reveals
// the correct option.
type MultiChoice struct {
	Options      []string
	CorrectIndex int // -1 when the answer matches no option
	Selected     int
	Submitted    bool
	ChosenIndex  int
	Theme        *theme.Theme
}

// NewMultiChoice creates a new multiple-choice component. correctAnswer
// is matched against the options verbatim.
func NewMultiChoice(th *theme.Theme, options []string, correctAnswer string) MultiChoice {
	correctIndex := -1
	for i, opt := range options {
		if opt == correctAnswer {
			correctIndex = i
			break
		}
	}
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
		Theme:        th,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "1", "2", "3", "4":
		i := int(kmsg.String()[0] - '1')
		if i < len(m.Options) {
			m.Selected = i
			m.Submitted = true
			m.ChosenIndex = i
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// View renders the options with A-D letters.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.Submitted {
			switch {
			case i == m.CorrectIndex:
				s += m.Theme.Correct.Render(line+"  ✓") + "\n"
			case i == m.ChosenIndex:
				s += m.Theme.Incorrect.Render(line+"  ✗") + "\n"
			default:
				s += m.Theme.Hint.Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += m.Theme.Selected.Render(line) + "\n"
			} else {
				s += m.Theme.Unselected.Render(line) + "\n"
			}
		}
	}
	return s
}

// Chosen returns the selected option text, or "" before submission.
func (m MultiChoice) Chosen() string {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
