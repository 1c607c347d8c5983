// Package builder implements the quiz creation screen: pick an input
// mode, provide source material, choose category and question count, and
// generate.
package builder

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizwoiz/internal/quizgen"
	"github.com/abhisek/quizwoiz/internal/router"
	"github.com/abhisek/quizwoiz/internal/screen"
	quizscreen "github.com/abhisek/quizwoiz/internal/screens/quiz"
	"github.com/abhisek/quizwoiz/internal/settings"
	"github.com/abhisek/quizwoiz/internal/store"
	"github.com/abhisek/quizwoiz/internal/ui/components"
	"github.com/abhisek/quizwoiz/internal/ui/layout"
	"github.com/abhisek/quizwoiz/internal/ui/theme"
)

// Focusable fields, cycled with tab.
const (
	focusMode = iota
	focusInput
	focusCategory
	focusCount
	numFocusFields
)

var modes = []quizgen.InputMode{quizgen.ModeTopic, quizgen.ModeText, quizgen.ModeFile}

var modeLabels = map[quizgen.InputMode]string{
	quizgen.ModeTopic: "Topic",
	quizgen.ModeText:  "Paste Text",
	quizgen.ModeFile:  "Upload File",
}

// BuilderScreen collects generation inputs and runs the request.
type BuilderScreen struct {
	th        *theme.Theme
	settings  settings.Settings
	generator quizgen.Generator
	quizRepo  store.QuizRepo
	eventRepo store.EventRepo

	modeIndex int
	focus     int

	topicInput components.TextInput
	textArea   components.TextArea
	fileInput  components.TextInput
	category   components.Picker
	count      components.Picker

	generating bool
	genSeq     int
	cancel     context.CancelFunc
	errMsg     string
}

var _ screen.Screen = (*BuilderScreen)(nil)
var _ screen.KeyHintProvider = (*BuilderScreen)(nil)
var _ screen.Cleaner = (*BuilderScreen)(nil)

// New creates a new BuilderScreen.
func New(th *theme.Theme, cfg settings.Settings, generator quizgen.Generator, quizRepo store.QuizRepo, eventRepo store.EventRepo) *BuilderScreen {
	category := components.NewPicker(th, "Category ", cfg.Categories)
	count := components.NewPicker(th, "Questions", []string{"5", "10", "15", "20"})

	return &BuilderScreen{
		th:         th,
		settings:   cfg,
		generator:  generator,
		quizRepo:   quizRepo,
		eventRepo:  eventRepo,
		focus:      focusInput,
		topicInput: components.NewTextInput("e.g. The French Revolution", 200),
		textArea:   components.NewTextArea("Paste your study material here...", 70, 8),
		fileInput:  components.NewTextInput("Path to a PDF, image or text file", 200),
		category:   category,
		count:      count,
	}
}

func (b *BuilderScreen) Init() tea.Cmd {
	return b.topicInput.Init()
}

func (b *BuilderScreen) Title() string {
	return "Create a Quiz"
}

func (b *BuilderScreen) KeyHints() []layout.KeyHint {
	if b.generating {
		return []layout.KeyHint{
			{Key: "Ctrl+G", Description: "Restart"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Change"},
		{Key: "Ctrl+G", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

// Cleanup cancels any in-flight generation when the screen is dismissed.
func (b *BuilderScreen) Cleanup() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

func (b *BuilderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		if msg.Seq != b.genSeq {
			return b, nil // superseded attempt
		}
		b.generating = false
		b.cancel = nil
		if len(msg.Questions) == 0 {
			b.errMsg = "AI returned no questions. Please try different content."
			return b, nil
		}
		return b, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quizscreen.New(b.th, msg.Questions, b.quizTitle(), b.category.Value(), b.quizRepo, b.eventRepo),
			}
		}

	case quizGenFailedMsg:
		if msg.Seq != b.genSeq {
			return b, nil
		}
		b.generating = false
		b.cancel = nil
		if errors.Is(msg.Err, context.Canceled) {
			return b, nil
		}
		b.errMsg = "Failed to generate quiz. Please check your connection or input."
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	return b.forwardToInput(msg)
}

func (b *BuilderScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		b.focus = (b.focus + 1) % numFocusFields
		return b, b.focusCmd()
	case "shift+tab":
		b.focus = (b.focus - 1 + numFocusFields) % numFocusFields
		return b, b.focusCmd()
	case "ctrl+g":
		return b, b.startGeneration()
	case "enter":
		// Enter generates, except in the textarea where it inserts a
		// newline.
		if !(b.focus == focusInput && b.mode() == quizgen.ModeText) {
			return b, b.startGeneration()
		}
	}

	if b.focus == focusMode {
		switch msg.String() {
		case "left", "h":
			b.modeIndex = (b.modeIndex - 1 + len(modes)) % len(modes)
			return b, b.focusCmd()
		case "right", "l":
			b.modeIndex = (b.modeIndex + 1) % len(modes)
			return b, b.focusCmd()
		}
		return b, nil
	}

	return b.forwardToInput(msg)
}

// forwardToInput routes a message to whichever field has focus.
func (b *BuilderScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch b.focus {
	case focusInput:
		switch b.mode() {
		case quizgen.ModeTopic:
			b.topicInput, cmd = b.topicInput.Update(msg)
		case quizgen.ModeText:
			b.textArea, cmd = b.textArea.Update(msg)
		case quizgen.ModeFile:
			b.fileInput, cmd = b.fileInput.Update(msg)
		}
	case focusCategory:
		b.category, cmd = b.category.Update(msg)
	case focusCount:
		b.count, cmd = b.count.Update(msg)
	}
	return b, cmd
}

func (b *BuilderScreen) mode() quizgen.InputMode {
	return modes[b.modeIndex]
}

// focusCmd re-focuses the active input after a focus or mode change.
func (b *BuilderScreen) focusCmd() tea.Cmd {
	b.topicInput.Blur()
	b.textArea.Blur()
	b.fileInput.Blur()
	b.category.Focused = b.focus == focusCategory
	b.count.Focused = b.focus == focusCount

	if b.focus != focusInput {
		return nil
	}
	switch b.mode() {
	case quizgen.ModeTopic:
		return b.topicInput.Focus()
	case quizgen.ModeText:
		return b.textArea.Focus()
	case quizgen.ModeFile:
		return b.fileInput.Focus()
	}
	return nil
}

// startGeneration validates the inputs and kicks off an async generation.
// A new attempt supersedes a running one: the old context is cancelled
// and its result dropped.
func (b *BuilderScreen) startGeneration() tea.Cmd {
	b.errMsg = ""

	if b.generator == nil {
		b.errMsg = "AI provider not configured. Set an API key and restart."
		return nil
	}

	count, _ := strconv.Atoi(b.count.Value())

	var file *quizgen.FilePayload
	if b.mode() == quizgen.ModeFile {
		path := b.fileInput.Value()
		var err error
		file, err = quizgen.ReadFile(path)
		if err != nil {
			b.errMsg = err.Error()
			return nil
		}
	}

	req, err := quizgen.BuildRequest(b.mode(), b.inputContent(), count, b.category.Value(), file)
	if err != nil {
		var missing *quizgen.ErrMissingInput
		if errors.As(err, &missing) {
			b.errMsg = missing.UserMessage()
		} else {
			b.errMsg = err.Error()
		}
		return nil
	}

	if b.cancel != nil {
		b.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.generating = true
	b.genSeq++
	seq := b.genSeq

	generator := b.generator
	return func() tea.Msg {
		questions, err := generator.Generate(ctx, req)
		if err != nil {
			return quizGenFailedMsg{Seq: seq, Err: err}
		}
		return quizReadyMsg{Seq: seq, Questions: questions}
	}
}

func (b *BuilderScreen) inputContent() string {
	switch b.mode() {
	case quizgen.ModeTopic:
		return b.topicInput.Value()
	case quizgen.ModeText:
		return b.textArea.Value()
	}
	return ""
}

// quizTitle derives a display title from the active input.
func (b *BuilderScreen) quizTitle() string {
	switch b.mode() {
	case quizgen.ModeTopic:
		title := b.topicInput.Value()
		if len(title) > 60 {
			title = title[:60]
		}
		return title
	case quizgen.ModeFile:
		return filepath.Base(b.fileInput.Value())
	}
	return "Pasted Text"
}

func (b *BuilderScreen) View(width, height int) string {
	var sections []string

	// Mode tabs.
	var tabs string
	for i, mode := range modes {
		label := " " + modeLabels[mode] + " "
		switch {
		case i == b.modeIndex && b.focus == focusMode:
			tabs += b.th.Selected.Render("[" + label + "]")
		case i == b.modeIndex:
			tabs += b.th.Selected.Render(" " + label + " ")
		default:
			tabs += b.th.Hint.Render(" " + label + " ")
		}
		tabs += "  "
	}
	sections = append(sections, tabs)

	// Active input.
	switch b.mode() {
	case quizgen.ModeTopic:
		sections = append(sections, b.th.Body.Render("What should the quiz be about?")+"\n"+b.topicInput.View())
	case quizgen.ModeText:
		sections = append(sections, b.textArea.View())
	case quizgen.ModeFile:
		sections = append(sections, b.th.Body.Render("File to analyze (PDF, image or plain text):")+"\n"+b.fileInput.View())
	}

	sections = append(sections, b.category.View()+"\n"+b.count.View())

	if b.generating {
		sections = append(sections, b.th.Hint.Render("Generating quiz..."))
	} else if b.errMsg != "" {
		sections = append(sections, b.th.Incorrect.Render(b.errMsg))
	}

	content := ""
	for i, s := range sections {
		if i > 0 {
			content += "\n\n"
		}
		content += s
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(b.th.Border).
		Padding(1, 2).
		Width(min(width-4, 80)).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
