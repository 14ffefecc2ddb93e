package command

import "strings"

// Kind identifies one of the fixed commands.
type Kind int

const (
	Unknown Kind = iota
	Help
	Topics
	Lesson
	Resources
	Labs
	Quiz
	Glossary
	Search
	Roadmap
	Suggest
	Status
	Question
	History
	Clear
)

type definition struct {
	kind        Kind
	tokens      []string // canonical name first
	usage       string
	description string
}

// definitions is listed in help order.
var definitions = []definition{
	{Help, []string{"help", "ayuda", "?"}, "help", "Show this command reference"},
	{Topics, []string{"topics", "temas"}, "topics", "List every topic"},
	{Lesson, []string{"lesson", "leccion", "lección"}, "lesson <topic>", "Full lesson for a topic"},
	{Resources, []string{"resources", "recursos"}, "resources [topic]", "Reading and tool links"},
	{Labs, []string{"labs", "lab", "laboratorios"}, "labs [topic]", "Hands-on labs"},
	{Quiz, []string{"quiz", "examen", "cuestionario"}, "quiz [topic]", "Answer a random question"},
	{Glossary, []string{"glossary", "glosario", "define"}, "glossary [term]", "Define a security term"},
	{Search, []string{"search", "buscar"}, "search <term>", "Find topics by keyword"},
	{Roadmap, []string{"roadmap", "ruta"}, "roadmap", "Multi-week study plan"},
	{Suggest, []string{"suggest", "sugerencia", "daily"}, "suggest", "Activity for today"},
	{Status, []string{"status", "estado", "stats"}, "status", "Quiz statistics for this session"},
	{Question, []string{"question", "pregunta", "ask"}, "question <text>", "Ask a free-form question"},
	{History, []string{"history", "historial"}, "history", "Recently submitted commands"},
	{Clear, []string{"clear", "limpiar", "cls"}, "clear", "Reset the transcript"},
}

var (
	byToken = make(map[string]Kind)
	byKind  = make(map[Kind]definition)
)

func init() {
	for _, d := range definitions {
		byKind[d.kind] = d
		for _, tok := range d.tokens {
			byToken[tok] = d.kind
		}
	}
}

// Lookup resolves a command token or synonym. Matching is case-insensitive.
func Lookup(token string) Kind {
	if k, ok := byToken[strings.ToLower(strings.TrimSpace(token))]; ok {
		return k
	}
	return Unknown
}

// Kinds returns every real command kind in help order.
func Kinds() []Kind {
	kinds := make([]Kind, len(definitions))
	for i, d := range definitions {
		kinds[i] = d.kind
	}
	return kinds
}

// String returns the canonical token.
func (k Kind) String() string {
	if d, ok := byKind[k]; ok {
		return d.tokens[0]
	}
	return "unknown"
}

// Aliases returns the localized synonyms of k, excluding the canonical token.
func Aliases(k Kind) []string {
	d, ok := byKind[k]
	if !ok {
		return nil
	}
	return append([]string(nil), d.tokens[1:]...)
}

// Usage returns the argument synopsis shown in help.
func Usage(k Kind) string { return byKind[k].usage }

// Description returns the one-line help text.
func Description(k Kind) string { return byKind[k].description }
