package terminal

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberterm/internal/session"
	"github.com/abhisek/cyberterm/internal/ui/components"
	"github.com/abhisek/cyberterm/internal/ui/layout"
	"github.com/abhisek/cyberterm/internal/ui/theme"
)

func (t *TerminalScreen) View(width, height int) string {
	var footer []string

	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-2, 0)))
	if layout.ShowStatusStrip(height) {
		footer = append(footer, rule, t.renderStatus(width))
	}
	footer = append(footer, rule, " "+t.input.View())

	t.page = max(height-len(footer), 1)
	lines := RenderTranscript(t.sess.History(), width-2)

	// Clamp so scrolling stops at the top of the transcript.
	maxScroll := max(len(lines)-t.page, 0)
	t.scroll = min(t.scroll, maxScroll)

	end := len(lines) - t.scroll
	start := max(end-t.page, 0)
	visible := lines[start:end]
	for len(visible) < t.page {
		visible = append([]string{""}, visible...)
	}

	out := make([]string, 0, len(visible)+len(footer))
	for _, l := range visible {
		out = append(out, " "+l)
	}
	out = append(out, footer...)
	return strings.Join(out, "\n")
}

func (t *TerminalScreen) renderStatus(width int) string {
	st := t.sess.Stats()
	status := lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + st.StatusLine())
	if !layout.ShowAccuracyBar(width) {
		return status
	}
	bar := components.NewProgressBar("accuracy", st.Accuracy(), true, 36).View()
	gap := max(width-lipgloss.Width(status)-lipgloss.Width(bar)-2, 1)
	return status + strings.Repeat(" ", gap) + bar
}

// RenderTranscript styles history entries and wraps them to width. It
// returns one element per screen line.
func RenderTranscript(entries []session.HistoryEntry, width int) []string {
	wrap := lipgloss.NewStyle().Width(max(width, 10))

	var out []string
	for _, e := range entries {
		for _, line := range e.Lines {
			styled := styleLine(e.Role, line)
			out = append(out, strings.Split(wrap.Render(styled), "\n")...)
		}
		if e.Role != session.RoleUser {
			out = append(out, "")
		}
	}
	return out
}

func styleLine(role session.Role, line string) string {
	switch role {
	case session.RoleUser:
		return theme.Prompt.Render("> ") + theme.UserLine.Render(line)
	case session.RoleSystem:
		return theme.SystemLine.Render(line)
	}

	switch {
	case strings.HasPrefix(line, "Correct!"):
		return theme.Correct.Render(line)
	case strings.HasPrefix(line, "Not quite"),
		strings.HasPrefix(line, "Out of attempts"),
		strings.HasPrefix(line, "Unknown command"):
		return theme.Incorrect.Render(line)
	case strings.HasPrefix(line, "Hint:"),
		strings.HasPrefix(line, "Usage:"),
		strings.HasPrefix(line, "You already used the hint"):
		return theme.Warning.Render(line)
	case strings.HasSuffix(line, ":") && !strings.HasPrefix(line, " "):
		return theme.Section.Render(line)
	}
	return theme.AssistantLine.Render(line)
}
