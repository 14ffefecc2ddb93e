package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberterm/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 16

	// The terminal screen drops its status strip and accuracy bar below
	// these sizes.
	StatusStripMinHeight = 24
	AccuracyBarMinWidth  = 90
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Status is the session summary shown on the right of the header.
type Status struct {
	Accuracy int
	Streak   int
	Quiz     bool
}

var (
	bar = lipgloss.NewStyle().
		Padding(0, 1).
		BorderForeground(theme.Border)

	quizBadge = lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.Accent).
			Bold(true)

	hintKey  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	hintDesc = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// TooSmall reports whether the window cannot fit the terminal screen.
func TooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ShowStatusStrip reports whether the stats line fits under the transcript.
func ShowStatusStrip(height int) bool { return height >= StatusStripMinHeight }

// ShowAccuracyBar reports whether the accuracy bar fits next to the stats line.
func ShowAccuracyBar(width int) bool { return width >= AccuracyBarMinWidth }

// BodyHeight returns the rows left for the active screen between the
// rendered header and footer.
func BodyHeight(total int, header, footer string) int {
	return max(total-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderTooSmall fills the window with the minimum size notice and points
// at line mode, which has no size requirement.
func RenderTooSmall(width, height int) string {
	msg := strings.Join([]string{
		theme.Title.Render("cyberterm"),
		"",
		fmt.Sprintf("This window is %d x %d.", width, height),
		fmt.Sprintf("The terminal needs at least %d x %d.", MinWidth, MinHeight),
		"",
		theme.Hint.Render(`Enlarge it, or restart with "cyberterm plain".`),
	}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// RenderHeader draws the title bar. A nil status leaves the right side
// empty, as on the splash screen.
func RenderHeader(title string, st *Status, width int) string {
	left := theme.Title.Render("cyberterm")
	if title != "" {
		left += theme.Hint.Render(" / ") + theme.Body.Render(title)
	}

	var right string
	if st != nil {
		parts := make([]string, 0, 3)
		if st.Quiz {
			parts = append(parts, quizBadge.Render(" QUIZ "))
		}
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✔ %d%%", st.Accuracy)),
			lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("⚡ %d streak", st.Streak)),
		)
		right = strings.Join(parts, "  ")
	}

	return bar.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		Width(width).
		Render(spread(left, right, width-2))
}

// RenderFooter draws the key hints under a rule.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, hintKey.Render(h.Key)+" "+hintDesc.Render(h.Description))
	}
	return bar.
		Border(lipgloss.NormalBorder(), true, false, false, false).
		Width(width).
		Render(strings.Join(parts, hintDesc.Render("  ·  ")))
}

// RenderFrame stacks header, body and footer, sizing the body to the rows
// that remain.
func RenderFrame(header, body, footer string, width, height int) string {
	h := BodyHeight(height, header, footer)
	body = lipgloss.NewStyle().
		Width(width).
		Height(h).
		MaxHeight(h).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// spread places left and right at opposite ends of a line of width columns.
func spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
