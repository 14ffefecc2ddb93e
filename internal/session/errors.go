package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/cyberterm/internal/content"
)

// ErrEmptyCatalog indicates a quiz was requested but no questions exist.
var ErrEmptyCatalog = errors.New("no quiz questions available")

// UsageError indicates a required argument is missing.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

// Lookup targets for NotFoundError.
const (
	WhatTopic  = "topic"
	WhatTerm   = "glossary term"
	WhatSearch = "search"
)

// NotFoundError indicates a lookup by topic, glossary term or search term
// matched nothing exactly. Suggestions holds close topic matches, if any.
type NotFoundError struct {
	What        string
	Term        string
	Suggestions []content.Topic
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.What, e.Term)
}
