package terminal

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberterm/internal/router"
	"github.com/abhisek/cyberterm/internal/screen"
	"github.com/abhisek/cyberterm/internal/session"
	"github.com/abhisek/cyberterm/internal/ui/components"
	"github.com/abhisek/cyberterm/internal/ui/layout"
)

// maxLineLen limits a single submitted line.
const maxLineLen = 256

// TerminalScreen is the interactive command terminal around a session.
type TerminalScreen struct {
	sess   *session.Session
	input  components.TextInput
	scroll int // lines scrolled back from the bottom
	page   int // visible transcript height from the last render
}

var _ screen.Screen = (*TerminalScreen)(nil)
var _ screen.KeyHintProvider = (*TerminalScreen)(nil)
var _ screen.StatusProvider = (*TerminalScreen)(nil)

// New creates a TerminalScreen driving sess.
func New(sess *session.Session) *TerminalScreen {
	return &TerminalScreen{
		sess:  sess,
		input: components.NewTextInput(`type "help" to begin`, maxLineLen),
		page:  10,
	}
}

func (t *TerminalScreen) Init() tea.Cmd {
	return t.input.Init()
}

func (t *TerminalScreen) Title() string {
	if t.sess.InQuiz() {
		return "Quiz"
	}
	return "Terminal"
}

func (t *TerminalScreen) HeaderStatus() layout.Status {
	st := t.sess.Stats()
	return layout.Status{Accuracy: st.Accuracy(), Streak: st.Streak, Quiz: t.sess.InQuiz()}
}

func (t *TerminalScreen) KeyHints() []layout.KeyHint {
	if t.sess.InQuiz() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "hint", Description: "Clue"},
			{Key: "skip", Description: "Reveal"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Run"},
		{Key: "↑↓", Description: "Recall"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Ctrl+O", Description: "Expand"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (t *TerminalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			t.submit()
			return t, nil
		case "up":
			if line, ok := t.sess.Recall().Up(); ok {
				t.input.SetValue(line)
			}
			return t, nil
		case "down":
			if line, ok := t.sess.Recall().Down(); ok {
				t.input.SetValue(line)
			}
			return t, nil
		case "pgup":
			t.scroll += t.page
			return t, nil
		case "pgdown":
			t.scroll = max(0, t.scroll-t.page)
			return t, nil
		case "ctrl+o":
			return t, t.expandLastOutput()
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *TerminalScreen) submit() {
	line := t.input.Value()
	t.input.Reset()
	t.sess.Recall().ResetCursor()
	if _, ok := t.sess.Submit(line); !ok {
		return
	}
	t.scroll = 0
	t.input.SetPrompt(t.sess.Prompt(), t.sess.InQuiz())
}

// expandLastOutput opens the newest response in an OutputScreen. It returns
// nil before the first response.
func (t *TerminalScreen) expandLastOutput() tea.Cmd {
	hist := t.sess.History()
	for i := len(hist) - 1; i > 0; i-- {
		if hist[i].Role != session.RoleAssistant {
			continue
		}
		var command string
		if prev := hist[i-1]; prev.Role == session.RoleUser && len(prev.Lines) > 0 {
			command = prev.Lines[0]
		}
		out := NewOutputScreen(command, hist[i])
		return func() tea.Msg { return router.PushScreenMsg{Screen: out} }
	}
	return nil
}
