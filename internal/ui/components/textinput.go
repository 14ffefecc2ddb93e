package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberterm/internal/ui/theme"
)

// TextInput wraps bubbles/textinput as the terminal's command prompt. The
// prompt is drawn outside the model.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	prompt   string
	quiz     bool
}

// NewTextInput creates a focused prompt input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{Model: ti, MaxWidth: maxWidth, prompt: "> "}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the prompt and the text input.
func (t TextInput) View() string {
	style := theme.Prompt
	if t.quiz {
		style = theme.QuizPrompt
	}
	return style.Render(t.prompt) + t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input and moves the cursor to the end.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
	t.Model.CursorEnd()
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// SetPrompt switches between the command prompt and the quiz prompt.
func (t *TextInput) SetPrompt(prompt string, quiz bool) {
	t.prompt = prompt
	t.quiz = quiz
}

// Prompt returns the current prompt text.
func (t TextInput) Prompt() string { return t.prompt }
