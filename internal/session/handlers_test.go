package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_ListsEveryCommandAndAlias(t *testing.T) {
	s := newTestSession(t)
	out := joined(submit(t, s, "ayuda"))
	for _, want := range []string{"lesson <topic>", "laboratorios", "cuestionario", "hint | pista", "skip | saltar"} {
		assert.Contains(t, out, want)
	}
}

func TestHelp_ColumnsAligned(t *testing.T) {
	s := newTestSession(t)
	turn := submit(t, s, "help")
	col := 2 + helpColumn + 2
	for _, line := range turn.Output {
		if !strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "    ") {
			continue
		}
		require.Greater(t, len(line), col, line)
		assert.NotEqual(t, byte(' '), line[col], "description should start at column %d: %q", col, line)
	}
}

func TestTopics_OneLinePerTopic(t *testing.T) {
	s := newTestSession(t)
	turn := submit(t, s, "temas")
	topics := testCatalog(t).Topics()
	require.Len(t, turn.Output, len(topics))
	assert.Equal(t, "redes | Network Security -> "+topics[1].Summary, turn.Output[1])
}

func TestLesson(t *testing.T) {
	s := newTestSession(t)
	turn := submit(t, s, "lesson NETWORKING")
	out := joined(turn)
	assert.Equal(t, "Network Security (redes)", turn.Output[0])
	for _, label := range []string{"Fundamentals:", "Advanced:", "Quick wins:", "Warning signs:", "Suggested path:"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "  - The TCP three-way handshake is SYN, SYN-ACK, ACK.")
}

func TestLesson_NotFound(t *testing.T) {
	s := newTestSession(t)
	turn := submit(t, s, "lesson doesnotexist123")
	assert.Equal(t, []string{
		`No topic matches "doesnotexist123".`,
		`Type "topics" to list every topic.`,
	}, turn.Output)
	assert.Nil(t, s.Pending())
	assert.Zero(t, s.Stats())
}

func TestLesson_Suggestions(t *testing.T) {
	s := newTestSession(t)
	turn := submit(t, s, "lección xss")
	assert.Equal(t, []string{
		`No exact topic "xss". Did you mean:`,
		"  - web -> Web Application Security",
	}, turn.Output)
}

func TestUsageErrors(t *testing.T) {
	tests := map[string]string{
		"lesson":   "Usage: lesson <topic>",
		"buscar":   "Usage: search <term>",
		"pregunta": "Usage: question <text>",
	}
	for line, want := range tests {
		s := newTestSession(t)
		turn := submit(t, s, line)
		assert.Equal(t, []string{want}, turn.Output, line)
		assert.Nil(t, s.Pending())
	}
}

func TestResources(t *testing.T) {
	s := newTestSession(t)

	all := submit(t, s, "resources")
	assert.Equal(t, "[fundamentos] Security Fundamentals", all.Output[0])
	assert.Contains(t, joined(all), "  - Nmap Reference Guide: https://nmap.org/book/man.html")

	one := submit(t, s, "recursos redes")
	assert.Equal(t, "Resources for Network Security:", one.Output[0])
	assert.Contains(t, joined(one), "    Official guide to capturing and filtering packets.")

	missing := submit(t, s, "resources doesnotexist123")
	assert.Equal(t, `No topic matches "doesnotexist123".`, missing.Output[0])
}

func TestLabs(t *testing.T) {
	s := newTestSession(t)

	all := submit(t, s, "labs")
	assert.Equal(t, "fundamentos | Personal asset inventory | beginner | 30 min | List your devices and accounts and rank them by impact.", all.Output[0])
	assert.Equal(t, `Type "labs <topic>" for step-by-step instructions.`, all.Output[len(all.Output)-1])

	detail := submit(t, s, "lab redes")
	assert.Equal(t, "Lab: Map a lab network with nmap", detail.Output[0])
	out := joined(detail)
	assert.Contains(t, out, "  1. Start two virtual machines on a host-only network.")
	assert.Contains(t, out, "  [ ] Live hosts identified.")
	assert.NotContains(t, out, "Read a TCP handshake", "only the first lab is shown")

	none := submit(t, s, "labs dfir")
	assert.Equal(t, []string{"Digital Forensics and Incident Response has no labs yet."}, none.Output)
}

func TestGlossary(t *testing.T) {
	s := newTestSession(t)

	all := submit(t, s, "glossary")
	assert.Len(t, all.Output, len(testCatalog(t).Glossary()))
	assert.True(t, strings.HasPrefix(all.Output[0], "phishing: "))

	hit := submit(t, s, "define   Zero    DAY ")
	assert.True(t, strings.HasPrefix(hit.Output[0], "zero-day: "))
	assert.Contains(t, joined(hit), "Usage: ")

	miss := submit(t, s, "glosario blockchain")
	assert.Equal(t, `"blockchain" is not in the glossary.`, miss.Output[0])
}

func TestSearch(t *testing.T) {
	s := newTestSession(t)

	turn := submit(t, s, "search security")
	require.Len(t, turn.Output, 4)
	assert.Equal(t, `Found 3 topic(s) for "security":`, turn.Output[0])
	assert.True(t, strings.HasPrefix(turn.Output[1], "  fundamentos -> Security Fundamentals | "))

	miss := submit(t, s, "search doesnotexist123")
	assert.Equal(t, []string{`No topics found for "doesnotexist123".`}, miss.Output)
}

func TestRoadmap_Numbered(t *testing.T) {
	s := newTestSession(t)
	turn := submit(t, s, "ruta")
	steps := testCatalog(t).Roadmap()
	require.Len(t, turn.Output, len(steps)+1)
	assert.Equal(t, "  1. "+steps[0], turn.Output[1])
}

func TestSuggest_UsesRandomSource(t *testing.T) {
	s := newTestSession(t, 2)
	turn := submit(t, s, "daily")
	want := testCatalog(t).DailySuggestions()[2]
	assert.Equal(t, []string{"Today's suggestion: " + want, encouragement}, turn.Output)
}

func TestStatus_ZeroAccuracy(t *testing.T) {
	s := newTestSession(t, 1)
	turn := submit(t, s, "estado")
	assert.Equal(t, "Answered: 0 | Correct: 0 | Accuracy: 0% | Streak: 0", turn.Output[0])
	assert.Equal(t, "Tip: "+testCatalog(t).MotivationalTips()[1], turn.Output[1])
}

func TestQuestion(t *testing.T) {
	s := newTestSession(t)

	turn := submit(t, s, "ask How does a firewall block a port?")
	assert.Equal(t, "Suggested topic: Network Security (redes)", turn.Output[0])
	out := joined(turn)
	assert.Contains(t, out, `Run "lesson redes"`)
	assert.Contains(t, out, `Run "quiz redes"`)
	assert.NotContains(t, out, "Segmentation", "only the first three fundamentals are shown")

	fallback := submit(t, s, "question what should I cook tonight")
	assert.Contains(t, joined(fallback), "Suggested topic: Security Fundamentals (fundamentos)")
}

func TestHistoryCommand(t *testing.T) {
	s := newTestSession(t)
	submit(t, s, "topics")
	turn := submit(t, s, "historial")
	assert.Equal(t, []string{
		"Recent commands (newest first):",
		"  1. historial",
		"  2. topics",
	}, turn.Output)
}

func TestUnknownCommand(t *testing.T) {
	s := newTestSession(t)
	turn := submit(t, s, "HACK the planet")
	assert.Equal(t, []string{
		"Unknown command: hack",
		`Type "help" to list the available commands.`,
	}, turn.Output)
}
