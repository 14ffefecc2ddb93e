package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeader(t *testing.T) {
	tests := []struct {
		name    string
		st      *Status
		want    []string
		notWant []string
	}{
		{"splash", nil, []string{"cyberterm"}, []string{"%", "QUIZ"}},
		{"idle", &Status{Accuracy: 67, Streak: 3}, []string{"Terminal", "67%", "3 streak"}, []string{"QUIZ"}},
		{"quiz", &Status{Accuracy: 50, Quiz: true}, []string{"QUIZ", "50%"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title := "Terminal"
			if tt.st == nil {
				title = ""
			}
			h := RenderHeader(title, tt.st, 100)
			for _, w := range tt.want {
				if !strings.Contains(h, w) {
					t.Errorf("header should contain %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(h, w) {
					t.Errorf("header should not contain %q", w)
				}
			}
		})
	}
}

func TestRenderFooter_ShowsHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Run"}, {Key: "Esc", Description: "Back"}}, 80)
	for _, want := range []string{"Enter", "Run", "Esc", "Back"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer should contain %q", want)
		}
	}
}

func TestTooSmall(t *testing.T) {
	if !TooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow window should be too small")
	}
	if !TooSmall(MinWidth, MinHeight-1) {
		t.Error("short window should be too small")
	}
	if TooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should be accepted")
	}
}

func TestRenderTooSmall_MentionsLineMode(t *testing.T) {
	msg := RenderTooSmall(40, 10)
	if !strings.Contains(msg, "40 x 10") {
		t.Error("notice should show the current size")
	}
	if !strings.Contains(msg, "cyberterm plain") {
		t.Error("notice should point at line mode")
	}
}

func TestBodyHeight(t *testing.T) {
	header := RenderHeader("Terminal", &Status{}, 80)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "Quit"}}, 80)

	want := 30 - lipgloss.Height(header) - lipgloss.Height(footer)
	if got := BodyHeight(30, header, footer); got != want {
		t.Errorf("BodyHeight(30) = %d, want %d", got, want)
	}
	if got := BodyHeight(1, header, footer); got != 0 {
		t.Errorf("BodyHeight(1) = %d, want 0", got)
	}
}

func TestRenderFrame_FillsWindow(t *testing.T) {
	header := RenderHeader("Terminal", nil, 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)

	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
	if !strings.Contains(frame, "body") {
		t.Error("frame should contain the body")
	}
}

func TestStripThresholds(t *testing.T) {
	if ShowStatusStrip(StatusStripMinHeight - 1) {
		t.Error("status strip should be hidden on short windows")
	}
	if !ShowAccuracyBar(AccuracyBarMinWidth) {
		t.Error("accuracy bar should show at its threshold")
	}
}
