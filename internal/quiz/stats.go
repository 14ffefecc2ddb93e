package quiz

import (
	"fmt"
	"math"
)

// Stats accumulates quiz results for one session. Only Resolve produces new
// values.
type Stats struct {
	Answered int
	Correct  int
	Streak   int
}

// Accuracy returns the rounded percentage of correct answers, 0 when nothing
// has been answered yet.
func (s Stats) Accuracy() int {
	if s.Answered == 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.Answered) * 100))
}

// StatusLine renders the stats for display.
func (s Stats) StatusLine() string {
	return fmt.Sprintf("Answered: %d | Correct: %d | Accuracy: %d%% | Streak: %d",
		s.Answered, s.Correct, s.Accuracy(), s.Streak)
}

func (s Stats) correct() Stats {
	return Stats{Answered: s.Answered + 1, Correct: s.Correct + 1, Streak: s.Streak + 1}
}

func (s Stats) missed() Stats {
	return Stats{Answered: s.Answered + 1, Correct: s.Correct}
}
