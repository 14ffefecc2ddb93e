package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/cyberterm/internal/command"
)

func (s *Session) dispatch(in command.Input) (lines []string, cleared bool) {
	kind := in.Kind()
	s.log.Debug("dispatch", "command", kind.String(), "token", in.Command, "args", in.Args)

	var err error
	switch kind {
	case command.Help:
		lines = s.runHelp()
	case command.Topics:
		lines = s.runTopics()
	case command.Lesson:
		lines, err = s.runLesson(in.Args)
	case command.Resources:
		lines, err = s.runResources(in.Args)
	case command.Labs:
		lines, err = s.runLabs(in.Args)
	case command.Quiz:
		lines, err = s.runQuiz(in.Args)
	case command.Glossary:
		lines, err = s.runGlossary(in.Args)
	case command.Search:
		lines, err = s.runSearch(in.Args)
	case command.Roadmap:
		lines = s.runRoadmap()
	case command.Suggest:
		lines = s.runSuggest()
	case command.Status:
		lines = s.runStatus()
	case command.Question:
		lines, err = s.runQuestion(in.Args)
	case command.History:
		lines = s.runHistory()
	case command.Clear:
		return s.runClear(), true
	case command.Unknown:
		lines = []string{
			"Unknown command: " + in.Command,
			`Type "help" to list the available commands.`,
		}
	}

	if err != nil {
		return s.renderError(kind, err), false
	}
	return lines, false
}

// renderError turns a handler error into output lines. Errors never leave
// the session.
func (s *Session) renderError(kind command.Kind, err error) []string {
	var usage *UsageError
	var notFound *NotFoundError

	switch {
	case errors.As(err, &usage):
		return []string{"Usage: " + usage.Usage}

	case errors.As(err, &notFound):
		return renderNotFound(notFound)

	case errors.Is(err, ErrEmptyCatalog):
		return []string{"No quiz questions are available right now."}

	default:
		s.log.Error("command failed", "command", kind.String(), "error", err)
		return []string{"Error: " + err.Error()}
	}
}

func renderNotFound(e *NotFoundError) []string {
	switch e.What {
	case WhatTopic:
		if len(e.Suggestions) == 0 {
			return []string{
				fmt.Sprintf("No topic matches %q.", e.Term),
				`Type "topics" to list every topic.`,
			}
		}
		lines := []string{fmt.Sprintf("No exact topic %q. Did you mean:", e.Term)}
		for _, t := range e.Suggestions {
			lines = append(lines, fmt.Sprintf("  - %s -> %s", t.ID, t.Title))
		}
		return lines

	case WhatTerm:
		return []string{
			fmt.Sprintf("%q is not in the glossary.", e.Term),
			`Type "glossary" to list every term.`,
		}

	case WhatSearch:
		return []string{fmt.Sprintf("No topics found for %q.", e.Term)}

	default:
		return []string{"Not found: " + e.Term}
	}
}
