package session

import (
	"fmt"
	"strings"

	"github.com/abhisek/cyberterm/internal/command"
	"github.com/abhisek/cyberterm/internal/content"
	"github.com/abhisek/cyberterm/internal/quiz"
)

// helpColumn is the width of the usage column in the help table.
const helpColumn = 18

const encouragement = "Small, steady practice beats cramming. You've got this."

func (s *Session) runHelp() []string {
	lines := []string{"Available commands:"}
	for _, k := range command.Kinds() {
		lines = append(lines, helpRow(command.Usage(k), command.Description(k)))
		if aliases := command.Aliases(k); len(aliases) > 0 {
			lines = append(lines, "    aliases: "+strings.Join(aliases, ", "))
		}
	}
	lines = append(lines,
		"While a quiz is active:",
		helpRow("hint | pista", "Reveal the first half of the answer (once)"),
		helpRow("skip | saltar", "Show the answer and move on"),
	)
	return lines
}

func helpRow(usage, description string) string {
	return fmt.Sprintf("  %-*s  %s", helpColumn, usage, description)
}

func (s *Session) runTopics() []string {
	topics := s.catalog.Topics()
	if len(topics) == 0 {
		return []string{"No topics available."}
	}
	lines := make([]string, 0, len(topics))
	for _, t := range topics {
		lines = append(lines, fmt.Sprintf("%s | %s -> %s", t.ID, t.Title, t.Summary))
	}
	return lines
}

// resolveTopic finds a topic by exact alias. On a miss the keyword search
// results are attached to the error as suggestions.
func (s *Session) resolveTopic(arg string) (content.Topic, error) {
	if t, ok := s.catalog.FindTopicByAlias(arg); ok {
		return t, nil
	}
	return content.Topic{}, &NotFoundError{
		What:        WhatTopic,
		Term:        arg,
		Suggestions: s.catalog.SearchTopics(arg),
	}
}

func (s *Session) runLesson(arg string) ([]string, error) {
	if arg == "" {
		return nil, &UsageError{Usage: command.Usage(command.Lesson)}
	}
	t, err := s.resolveTopic(arg)
	if err != nil {
		return nil, err
	}

	lines := []string{fmt.Sprintf("%s (%s)", t.Title, t.ID), t.Summary}
	lines = appendSection(lines, "Fundamentals:", t.Fundamentals)
	lines = appendSection(lines, "Advanced:", t.Advanced)
	lines = appendSection(lines, "Quick wins:", t.QuickWins)
	lines = appendSection(lines, "Warning signs:", t.WarningSigns)
	lines = appendSection(lines, "Suggested path:", t.Path)
	lines = append(lines, fmt.Sprintf(`Next: "labs %s" to practice or "quiz %s" to test yourself.`, t.ID, t.ID))
	return lines, nil
}

func appendSection(lines []string, label string, items []string) []string {
	if len(items) == 0 {
		return lines
	}
	lines = append(lines, label)
	for _, item := range items {
		lines = append(lines, "  - "+item)
	}
	return lines
}

func (s *Session) runResources(arg string) ([]string, error) {
	if arg == "" {
		var lines []string
		for _, t := range s.catalog.Topics() {
			if len(t.Resources) == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("[%s] %s", t.ID, t.Title))
			for _, r := range t.Resources {
				lines = append(lines, fmt.Sprintf("  - %s: %s", r.Title, r.URL))
			}
		}
		if len(lines) == 0 {
			return []string{"No resources available."}, nil
		}
		return lines, nil
	}

	t, err := s.resolveTopic(arg)
	if err != nil {
		return nil, err
	}
	if len(t.Resources) == 0 {
		return []string{fmt.Sprintf("No resources listed for %s yet.", t.Title)}, nil
	}
	lines := []string{fmt.Sprintf("Resources for %s:", t.Title)}
	for _, r := range t.Resources {
		lines = append(lines, fmt.Sprintf("  - %s: %s", r.Title, r.URL))
		if r.Description != "" {
			lines = append(lines, "    "+r.Description)
		}
	}
	return lines, nil
}

func (s *Session) runLabs(arg string) ([]string, error) {
	if arg == "" {
		var lines []string
		for _, t := range s.catalog.Topics() {
			for _, l := range t.Labs {
				lines = append(lines, fmt.Sprintf("%s | %s | %s | %s | %s", t.ID, l.Title, l.Difficulty, l.Time, l.Goal))
			}
		}
		if len(lines) == 0 {
			return []string{"No labs available."}, nil
		}
		return append(lines, `Type "labs <topic>" for step-by-step instructions.`), nil
	}

	t, err := s.resolveTopic(arg)
	if err != nil {
		return nil, err
	}
	if len(t.Labs) == 0 {
		return []string{fmt.Sprintf("%s has no labs yet.", t.Title)}, nil
	}

	l := t.Labs[0]
	lines := []string{
		"Lab: " + l.Title,
		fmt.Sprintf("Difficulty: %s | Time: %s", l.Difficulty, l.Time),
		"Goal: " + l.Goal,
		"Steps:",
	}
	for i, step := range l.Steps {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, step))
	}
	if len(l.Checklist) > 0 {
		lines = append(lines, "Checklist:")
		for _, item := range l.Checklist {
			lines = append(lines, "  [ ] "+item)
		}
	}
	return lines, nil
}

func (s *Session) runQuiz(arg string) ([]string, error) {
	var pool []content.QuizQuestion
	if arg != "" {
		if t, ok := s.catalog.FindTopicByAlias(arg); ok {
			pool = t.Quiz
		}
	}
	if len(pool) == 0 {
		pool = s.catalog.AllQuizQuestions()
	}
	if len(pool) == 0 {
		return nil, ErrEmptyCatalog
	}

	q := pool[s.rand.IntN(len(pool))]
	p, lines := quiz.Start(q)
	s.pending = &p
	s.log.Info("quiz started", "topic", q.TopicID, "choices", len(q.Choices))
	return lines, nil
}

func (s *Session) runGlossary(arg string) ([]string, error) {
	if arg == "" {
		entries := s.catalog.Glossary()
		if len(entries) == 0 {
			return []string{"The glossary is empty."}, nil
		}
		lines := make([]string, 0, len(entries))
		for _, g := range entries {
			lines = append(lines, fmt.Sprintf("%s: %s", g.Term, g.Definition))
		}
		return lines, nil
	}

	g, ok := s.catalog.LookupGlossary(arg)
	if !ok {
		return nil, &NotFoundError{What: WhatTerm, Term: arg}
	}
	lines := []string{fmt.Sprintf("%s: %s", g.Term, g.Definition)}
	if g.Usage != "" {
		lines = append(lines, "Usage: "+g.Usage)
	}
	if len(g.Aliases) > 0 {
		lines = append(lines, "Also known as: "+strings.Join(g.Aliases, ", "))
	}
	return lines, nil
}

func (s *Session) runSearch(arg string) ([]string, error) {
	if arg == "" {
		return nil, &UsageError{Usage: command.Usage(command.Search)}
	}
	matches := s.catalog.SearchTopics(arg)
	if len(matches) == 0 {
		return nil, &NotFoundError{What: WhatSearch, Term: arg}
	}
	lines := []string{fmt.Sprintf("Found %d topic(s) for %q:", len(matches), arg)}
	for _, t := range matches {
		lines = append(lines, fmt.Sprintf("  %s -> %s | %s", t.ID, t.Title, t.Summary))
	}
	return lines, nil
}

func (s *Session) runRoadmap() []string {
	steps := s.catalog.Roadmap()
	if len(steps) == 0 {
		return []string{"No roadmap available."}
	}
	lines := []string{"Study roadmap:"}
	for i, step := range steps {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, step))
	}
	return lines
}

func (s *Session) runSuggest() []string {
	lines := []string{}
	if pick, ok := s.pick(s.catalog.DailySuggestions()); ok {
		lines = append(lines, "Today's suggestion: "+pick)
	}
	return append(lines, encouragement)
}

func (s *Session) runStatus() []string {
	lines := []string{s.stats.StatusLine()}
	if tip, ok := s.pick(s.catalog.MotivationalTips()); ok {
		lines = append(lines, "Tip: "+tip)
	}
	return lines
}

func (s *Session) runQuestion(arg string) ([]string, error) {
	if arg == "" {
		return nil, &UsageError{Usage: command.Usage(command.Question)}
	}

	t, ok := s.catalog.MatchQuestionToTopic(arg)
	var lines []string
	if !ok {
		t = s.catalog.DefaultTopic()
		lines = append(lines, "No topic matched your question closely, so start with the basics.")
	}
	lines = append(lines,
		fmt.Sprintf("Suggested topic: %s (%s)", t.Title, t.ID),
		t.Summary,
	)

	fundamentals := t.Fundamentals
	if len(fundamentals) > 3 {
		fundamentals = fundamentals[:3]
	}
	lines = appendSection(lines, "Key fundamentals:", fundamentals)
	lines = append(lines,
		"Recommendations:",
		fmt.Sprintf(`  - Run "lesson %s" for the full lesson.`, t.ID),
		fmt.Sprintf(`  - Run "quiz %s" to test what you know.`, t.ID),
	)
	return lines, nil
}

func (s *Session) runHistory() []string {
	entries := s.recall.Entries()
	if len(entries) == 0 {
		return []string{"No commands yet."}
	}
	lines := []string{"Recent commands (newest first):"}
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, e))
	}
	return lines
}

func (s *Session) runClear() []string {
	s.history = []HistoryEntry{s.boot}
	s.pending = nil
	s.log.Info("transcript cleared")
	return []string{"Transcript cleared."}
}

// pick chooses uniformly from items.
func (s *Session) pick(items []string) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	return items[s.rand.IntN(len(items))], true
}
