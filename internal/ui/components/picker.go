package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizwoiz/internal/ui/theme"
)

// Picker is a horizontal value selector cycled with left/right keys.
type Picker struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
	Theme    *theme.Theme
}

// NewPicker creates a picker over the given options.
func NewPicker(th *theme.Theme, label string, options []string) Picker {
	return Picker{
		Label:   label,
		Options: options,
		Theme:   th,
	}
}

// Update handles left/right cycling when focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected--
		if p.Selected < 0 {
			p.Selected = len(p.Options) - 1
		}
	case "right", "l":
		p.Selected++
		if p.Selected >= len(p.Options) {
			p.Selected = 0
		}
	}
	return p, nil
}

// View renders the picker as "Label  ◂ value ▸".
func (p Picker) View() string {
	value := ""
	if p.Selected >= 0 && p.Selected < len(p.Options) {
		value = p.Options[p.Selected]
	}

	label := p.Theme.Unselected.Render(p.Label)
	if p.Focused {
		return fmt.Sprintf("%s  %s", label, p.Theme.Selected.Render("◂ "+value+" ▸"))
	}
	return fmt.Sprintf("%s  %s", label, p.Theme.Body.Render("  "+value))
}

// Value returns the selected option, or "" if the picker is empty.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}
