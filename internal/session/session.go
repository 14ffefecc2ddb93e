package session

import (
	"log/slog"
	"math/rand/v2"

	"github.com/abhisek/cyberterm/internal/command"
	"github.com/abhisek/cyberterm/internal/content"
	"github.com/abhisek/cyberterm/internal/quiz"
)

// Catalog is the read-only content query surface the session consumes.
// *content.Catalog satisfies it.
type Catalog interface {
	FindTopicByAlias(alias string) (content.Topic, bool)
	SearchTopics(term string) []content.Topic
	MatchQuestionToTopic(text string) (content.Topic, bool)
	AllQuizQuestions() []content.QuizQuestion
	LookupGlossary(term string) (content.GlossaryEntry, bool)

	Topics() []content.Topic
	Glossary() []content.GlossaryEntry
	Roadmap() []string
	DailySuggestions() []string
	MotivationalTips() []string
	DefaultTopic() content.Topic
}

// Rand picks uniformly in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Options configures a Session.
type Options struct {
	Catalog Catalog
	Rand    Rand         // defaults to the runtime source
	Logger  *slog.Logger // defaults to discarding
}

// Turn is the result of one submitted line.
type Turn struct {
	Input   command.Input
	Output  []string
	Cleared bool
}

// Session owns all mutable state of one interactive run: transcript,
// pending quiz, stats and command recall. It is not safe for concurrent use.
type Session struct {
	catalog Catalog
	rand    Rand
	log     *slog.Logger

	boot    HistoryEntry
	history []HistoryEntry
	pending *quiz.Pending
	stats   quiz.Stats
	recall  *RecallBuffer
}

// New creates a session whose transcript holds only the boot entry.
func New(opts Options) *Session {
	s := &Session{
		catalog: opts.Catalog,
		rand:    opts.Rand,
		log:     opts.Logger,
		boot:    newEntry(RoleSystem, BootLines),
		recall:  NewRecallBuffer(),
	}
	if s.rand == nil {
		s.rand = globalRand{}
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	s.history = []HistoryEntry{s.boot}
	return s
}

// Submit processes one line. Blank lines are ignored and report false.
// While a quiz is pending every line is treated as an answer.
func (s *Session) Submit(line string) (Turn, bool) {
	in, ok := command.Parse(line)
	if !ok {
		return Turn{}, false
	}
	s.recall.Push(in.Raw)
	s.history = append(s.history, newEntry(RoleUser, []string{in.Raw}))

	turn := Turn{Input: in}
	if s.pending != nil {
		turn.Output = s.answer(in.Raw)
	} else {
		turn.Output, turn.Cleared = s.dispatch(in)
	}

	if !turn.Cleared {
		s.history = append(s.history, newEntry(RoleAssistant, turn.Output))
	}
	return turn, true
}

func (s *Session) answer(input string) []string {
	topic := s.pending.Question.TopicID
	res := quiz.Resolve(*s.pending, s.stats, input)
	s.pending, s.stats = res.Pending, res.Stats

	if res.Outcome.Resolved() {
		s.log.Info("quiz resolved",
			"topic", topic,
			"outcome", res.Outcome.String(),
			"answered", s.stats.Answered,
			"correct", s.stats.Correct,
			"streak", s.stats.Streak)
	} else {
		s.log.Debug("quiz answer", "topic", topic, "outcome", res.Outcome.String())
	}
	return res.Lines
}

// History returns the transcript in order.
func (s *Session) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Stats returns the current quiz statistics.
func (s *Session) Stats() quiz.Stats { return s.stats }

// Pending returns a copy of the active question state, or nil when idle.
func (s *Session) Pending() *quiz.Pending {
	if s.pending == nil {
		return nil
	}
	p := *s.pending
	return &p
}

// InQuiz reports whether the next line will be treated as an answer.
func (s *Session) InQuiz() bool { return s.pending != nil }

// Recall returns the command recall buffer.
func (s *Session) Recall() *RecallBuffer { return s.recall }

// Prompt returns the input prompt for the current state.
func (s *Session) Prompt() string {
	if s.pending != nil {
		return "quiz> "
	}
	return "> "
}
