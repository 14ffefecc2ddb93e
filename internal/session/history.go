package session

import "github.com/google/uuid"

// Role identifies who produced a transcript entry.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// HistoryEntry is one immutable transcript record.
type HistoryEntry struct {
	ID    string
	Role  Role
	Lines []string
}

func newEntry(role Role, lines []string) HistoryEntry {
	return HistoryEntry{
		ID:    uuid.New().String(),
		Role:  role,
		Lines: append([]string(nil), lines...),
	}
}

// BootLines is the greeting every transcript starts with.
var BootLines = []string{
	"cyberterm: interactive cybersecurity training terminal",
	`Type "help" to list the available commands, or "topics" to see what you can learn.`,
}
