package content

import "slices"

// QuizQuestion is a single quiz item attached to a topic.
type QuizQuestion struct {
	Prompt      string   `yaml:"prompt"`
	Answer      string   `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
	Choices     []string `yaml:"choices,omitempty"`

	// TopicID is filled in by the loader from the owning topic.
	TopicID string `yaml:"-"`
}

// Resource is an external reading or tool reference for a topic.
type Resource struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// Lab is a hands-on exercise.
type Lab struct {
	Title      string   `yaml:"title"`
	Difficulty string   `yaml:"difficulty"`
	Time       string   `yaml:"time"`
	Goal       string   `yaml:"goal"`
	Steps      []string `yaml:"steps"`
	Checklist  []string `yaml:"checklist"`
}

// Topic is a teachable area with its full profile.
type Topic struct {
	ID           string         `yaml:"id"`
	Title        string         `yaml:"title"`
	Aliases      []string       `yaml:"aliases"`
	Keywords     []string       `yaml:"keywords"`
	Summary      string         `yaml:"summary"`
	Fundamentals []string       `yaml:"fundamentals"`
	Advanced     []string       `yaml:"advanced"`
	QuickWins    []string       `yaml:"quick_wins"`
	WarningSigns []string       `yaml:"warning_signs"`
	Path         []string       `yaml:"path"`
	Resources    []Resource     `yaml:"resources"`
	Labs         []Lab          `yaml:"labs"`
	Quiz         []QuizQuestion `yaml:"quiz"`
}

// GlossaryEntry defines a term.
type GlossaryEntry struct {
	Term       string   `yaml:"term"`
	Aliases    []string `yaml:"aliases,omitempty"`
	Definition string   `yaml:"definition"`
	Usage      string   `yaml:"usage"`
}

// document mirrors the on-disk catalog layout.
type document struct {
	Version          string          `yaml:"version"`
	DefaultTopic     string          `yaml:"default_topic"`
	Topics           []Topic         `yaml:"topics"`
	Glossary         []GlossaryEntry `yaml:"glossary"`
	Roadmap          []string        `yaml:"roadmap"`
	DailySuggestions []string        `yaml:"daily_suggestions"`
	MotivationalTips []string        `yaml:"motivational_tips"`
}

// The catalog hands out deep copies so callers cannot reach its storage.

func (q QuizQuestion) clone() QuizQuestion {
	q.Choices = slices.Clone(q.Choices)
	return q
}

func (l Lab) clone() Lab {
	l.Steps = slices.Clone(l.Steps)
	l.Checklist = slices.Clone(l.Checklist)
	return l
}

func (t Topic) clone() Topic {
	t.Aliases = slices.Clone(t.Aliases)
	t.Keywords = slices.Clone(t.Keywords)
	t.Fundamentals = slices.Clone(t.Fundamentals)
	t.Advanced = slices.Clone(t.Advanced)
	t.QuickWins = slices.Clone(t.QuickWins)
	t.WarningSigns = slices.Clone(t.WarningSigns)
	t.Path = slices.Clone(t.Path)
	t.Resources = slices.Clone(t.Resources)
	t.Labs = cloneEach(t.Labs, Lab.clone)
	t.Quiz = cloneEach(t.Quiz, QuizQuestion.clone)
	return t
}

func (g GlossaryEntry) clone() GlossaryEntry {
	g.Aliases = slices.Clone(g.Aliases)
	return g
}

func cloneEach[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, v := range items {
		out[i] = clone(v)
	}
	return out
}
