package components

import (
	"strings"
	"testing"
)

func TestProgressBar_Filled(t *testing.T) {
	tests := []struct {
		percent, width, want int
	}{
		{0, 20, 0},
		{50, 20, 10},
		{67, 30, 20},
		{100, 20, 20},
		{150, 20, 20},
		{-5, 20, 0},
	}
	for _, tt := range tests {
		p := ProgressBar{Percent: tt.percent}
		if got := p.Filled(tt.width); got != tt.want {
			t.Errorf("Filled(%d) at %d%% = %d, want %d", tt.width, tt.percent, got, tt.want)
		}
	}
}

func TestProgressBar_ViewShowsPercent(t *testing.T) {
	view := NewProgressBar("accuracy", 75, true, 40).View()
	if !strings.Contains(view, "75%") {
		t.Errorf("view should contain percent, got %q", view)
	}
	if !strings.Contains(view, "accuracy") {
		t.Errorf("view should contain label, got %q", view)
	}
}
