package session

import (
	"slices"
	"strings"
)

// RecallLimit caps the number of remembered command lines.
const RecallLimit = 30

// RecallBuffer keeps distinct submitted lines, most recent first, and a
// browsing cursor for up/down navigation.
type RecallBuffer struct {
	entries []string
	cursor  int // -1 = not browsing
}

// NewRecallBuffer returns an empty buffer.
func NewRecallBuffer() *RecallBuffer {
	return &RecallBuffer{cursor: -1}
}

// Push records line at the front. A line already present is moved rather
// than duplicated. Pushing ends any browsing.
func (b *RecallBuffer) Push(line string) {
	line = strings.TrimSpace(line)
	b.cursor = -1
	if line == "" {
		return
	}
	if i := slices.Index(b.entries, line); i >= 0 {
		b.entries = slices.Delete(b.entries, i, i+1)
	}
	b.entries = slices.Insert(b.entries, 0, line)
	if len(b.entries) > RecallLimit {
		b.entries = b.entries[:RecallLimit]
	}
}

// Entries returns a copy of the buffer, most recent first.
func (b *RecallBuffer) Entries() []string {
	return slices.Clone(b.entries)
}

// Len returns the number of entries.
func (b *RecallBuffer) Len() int { return len(b.entries) }

// Cursor returns the browsing position, or -1.
func (b *RecallBuffer) Cursor() int { return b.cursor }

// Up moves toward older entries, stopping at the oldest. It reports false
// when there is nothing to recall.
func (b *RecallBuffer) Up() (string, bool) {
	if len(b.entries) == 0 {
		return "", false
	}
	if b.cursor < len(b.entries)-1 {
		b.cursor++
	}
	return b.entries[b.cursor], true
}

// Down moves toward newer entries. Moving past the newest returns an empty
// line and stops browsing. It reports false when not browsing.
func (b *RecallBuffer) Down() (string, bool) {
	if b.cursor < 0 {
		return "", false
	}
	b.cursor--
	if b.cursor < 0 {
		return "", true
	}
	return b.entries[b.cursor], true
}

// ResetCursor stops browsing.
func (b *RecallBuffer) ResetCursor() { b.cursor = -1 }
