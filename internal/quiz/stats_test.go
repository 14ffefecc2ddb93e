package quiz

import "testing"

func TestStats_Accuracy(t *testing.T) {
	tests := []struct {
		stats Stats
		want  int
	}{
		{Stats{}, 0},
		{Stats{Answered: 3, Correct: 3}, 100},
		{Stats{Answered: 3, Correct: 2}, 67},
		{Stats{Answered: 3, Correct: 1}, 33},
		{Stats{Answered: 8, Correct: 1}, 13},
	}
	for _, tt := range tests {
		if got := tt.stats.Accuracy(); got != tt.want {
			t.Errorf("%+v.Accuracy() = %d, want %d", tt.stats, got, tt.want)
		}
	}
}

func TestStats_StatusLine(t *testing.T) {
	got := Stats{}.StatusLine()
	want := "Answered: 0 | Correct: 0 | Accuracy: 0% | Streak: 0"
	if got != want {
		t.Errorf("StatusLine() = %q, want %q", got, want)
	}

	got = Stats{Answered: 4, Correct: 3, Streak: 2}.StatusLine()
	want = "Answered: 4 | Correct: 3 | Accuracy: 75% | Streak: 2"
	if got != want {
		t.Errorf("StatusLine() = %q, want %q", got, want)
	}
}
