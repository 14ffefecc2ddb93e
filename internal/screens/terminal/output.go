package terminal

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberterm/internal/router"
	"github.com/abhisek/cyberterm/internal/screen"
	"github.com/abhisek/cyberterm/internal/session"
	"github.com/abhisek/cyberterm/internal/ui/layout"
	"github.com/abhisek/cyberterm/internal/ui/theme"
)

// OutputScreen shows one response at full height, for lessons and labs that
// do not fit under the prompt.
type OutputScreen struct {
	command string
	entry   session.HistoryEntry
	offset  int // first visible line
	page    int
	total   int
}

var _ screen.Screen = (*OutputScreen)(nil)
var _ screen.KeyHintProvider = (*OutputScreen)(nil)

// NewOutputScreen creates a viewer for entry, the response to command.
func NewOutputScreen(command string, entry session.HistoryEntry) *OutputScreen {
	return &OutputScreen{command: command, entry: entry, page: 10}
}

func (o *OutputScreen) Init() tea.Cmd { return nil }

func (o *OutputScreen) Title() string {
	if o.command == "" {
		return "Output"
	}
	return "Output: " + o.command
}

func (o *OutputScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "q/Esc", Description: "Back"},
	}
}

func (o *OutputScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, nil
	}
	switch key.String() {
	case "up", "k":
		o.offset--
	case "down", "j":
		o.offset++
	case "pgup":
		o.offset -= o.page
	case "pgdown", "space":
		o.offset += o.page
	case "home", "g":
		o.offset = 0
	case "end", "G":
		o.offset = o.total
	case "q":
		return o, func() tea.Msg { return router.PopScreenMsg{} }
	}
	o.offset = max(o.offset, 0)
	return o, nil
}

func (o *OutputScreen) View(width, height int) string {
	lines := RenderTranscript([]session.HistoryEntry{o.entry}, width-2)
	// Drop the spacer RenderTranscript adds after each response.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	o.total = len(lines)
	o.page = max(height-1, 1)
	o.offset = min(o.offset, max(o.total-o.page, 0))

	end := min(o.offset+o.page, o.total)
	out := make([]string, 0, o.page+1)
	for _, l := range lines[o.offset:end] {
		out = append(out, " "+l)
	}
	for len(out) < o.page {
		out = append(out, "")
	}

	pos := fmt.Sprintf(" lines %d-%d of %d", min(o.offset+1, o.total), end, o.total)
	out = append(out, lipgloss.NewStyle().Foreground(theme.TextDim).Render(pos))
	return strings.Join(out, "\n")
}
