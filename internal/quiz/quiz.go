package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/cyberterm/internal/content"
)

// MaxAttempts is the number of wrong answers that ends a round.
const MaxAttempts = 2

var (
	hintTokens = map[string]bool{"hint": true, "pista": true}
	skipTokens = map[string]bool{"skip": true, "saltar": true}
)

// Outcome classifies how an answer was handled.
type Outcome int

const (
	OutcomeHint Outcome = iota
	OutcomeHintRepeated
	OutcomeSkipped
	OutcomeCorrect
	OutcomeRetry
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHint:
		return "hint"
	case OutcomeHintRepeated:
		return "hint-repeated"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCorrect:
		return "correct"
	case OutcomeRetry:
		return "retry"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Resolved reports whether the outcome ends the round.
func (o Outcome) Resolved() bool {
	return o == OutcomeSkipped || o == OutcomeCorrect || o == OutcomeFailed
}

// Pending is the active question. A session holds at most one.
type Pending struct {
	Question     content.QuizQuestion
	Attempts     int
	RevealedHint bool
}

// Result is the outcome of feeding one input line to a pending question.
type Result struct {
	Outcome Outcome
	Pending *Pending // nil once the round is resolved
	Stats   Stats
	Lines   []string
}

// Start opens a round for q and returns the lines that present it.
func Start(q content.QuizQuestion) (Pending, []string) {
	lines := []string{"Quiz: " + q.Prompt}
	for i, c := range q.Choices {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, c))
	}
	lines = append(lines, `Type your answer. Use "hint" for a clue or "skip" to see the answer.`)
	return Pending{Question: q}, lines
}

// IsHint reports whether input asks for a hint.
func IsHint(input string) bool { return hintTokens[normalize(input)] }

// IsSkip reports whether input skips the question.
func IsSkip(input string) bool { return skipTokens[normalize(input)] }

// Resolve applies one input line to the pending question. It does not
// modify p or stats.
func Resolve(p Pending, stats Stats, input string) Result {
	answer := normalize(input)
	q := p.Question

	switch {
	case hintTokens[answer]:
		if p.RevealedHint {
			return Result{
				Outcome: OutcomeHintRepeated,
				Pending: &p,
				Stats:   stats,
				Lines:   []string{"You already used the hint for this question."},
			}
		}
		next := p
		next.RevealedHint = true
		return Result{
			Outcome: OutcomeHint,
			Pending: &next,
			Stats:   stats,
			Lines:   []string{"Hint: " + Hint(q.Answer)},
		}

	case skipTokens[answer]:
		stats = stats.missed()
		return Result{
			Outcome: OutcomeSkipped,
			Stats:   stats,
			Lines:   reveal("Skipped.", q, stats),
		}

	case answer == normalize(q.Answer):
		stats = stats.correct()
		lines := []string{"Correct!", q.Explanation, stats.StatusLine(), `Type "quiz" for another question.`}
		return Result{Outcome: OutcomeCorrect, Stats: stats, Lines: lines}
	}

	next := p
	next.Attempts++
	if next.Attempts >= MaxAttempts {
		stats = stats.missed()
		return Result{
			Outcome: OutcomeFailed,
			Stats:   stats,
			Lines:   reveal("Out of attempts.", q, stats),
		}
	}
	return Result{
		Outcome: OutcomeRetry,
		Pending: &next,
		Stats:   stats,
		Lines:   []string{`Not quite. Try again, or type "hint" or "skip".`},
	}
}

// Hint returns the first half of answer, rounded up, followed by an
// ellipsis. Length is counted in runes.
func Hint(answer string) string {
	r := []rune(strings.TrimSpace(answer))
	return string(r[:(len(r)+1)/2]) + "..."
}

func reveal(prefix string, q content.QuizQuestion, stats Stats) []string {
	return []string{
		fmt.Sprintf("%s The answer was: %s", prefix, q.Answer),
		q.Explanation,
		stats.StatusLine(),
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
