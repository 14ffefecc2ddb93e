package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberterm/internal/router"
	"github.com/abhisek/cyberterm/internal/screen"
	"github.com/abhisek/cyberterm/internal/screens/terminal"
	"github.com/abhisek/cyberterm/internal/screens/welcome"
	"github.com/abhisek/cyberterm/internal/session"
	"github.com/abhisek/cyberterm/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Session  *session.Session
	NoSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting on the splash screen, or directly
// on the terminal when the splash is disabled.
func newAppModel(opts Options) AppModel {
	term := func() screen.Screen { return terminal.New(opts.Session) }

	var initial screen.Screen
	if opts.NoSplash {
		initial = term()
	} else {
		initial = welcome.New(term)
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the whole window: the too-small notice, or header, active
// screen and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.TooSmall(m.width, m.height) {
		return layout.RenderTooSmall(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var status *layout.Status
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			st := sp.HeaderStatus()
			status = &st
		}
	}
	header := layout.RenderHeader(title, status, m.width)

	hints := []layout.KeyHint{
		{Key: "any key", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = kp.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	body := m.router.View(m.width, layout.BodyHeight(m.height, header, footer))
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
