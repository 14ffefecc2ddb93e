package command

import (
	"strings"
	"unicode"
)

// Input is a parsed command line.
type Input struct {
	Raw     string // trimmed line as typed
	Command string // first token, lower-cased
	Args    string // remainder, trimmed, case preserved
}

// Kind resolves the command token through the alias table.
func (in Input) Kind() Kind { return Lookup(in.Command) }

// Parse trims line and splits it on the first whitespace run. It reports
// false for blank lines, which must be ignored entirely.
func Parse(line string) (Input, bool) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return Input{}, false
	}

	cmd, rest := raw, ""
	if i := strings.IndexFunc(raw, unicode.IsSpace); i >= 0 {
		cmd, rest = raw[:i], raw[i:]
	}
	return Input{
		Raw:     raw,
		Command: strings.ToLower(cmd),
		Args:    strings.TrimSpace(rest),
	}, true
}
