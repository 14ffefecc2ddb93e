package content

import (
	"slices"
	"strings"
	"unicode"
)

// Catalog is the immutable content store. It is safe to share once built;
// every accessor returns copies.
type Catalog struct {
	version          string
	defaultTopic     string
	topics           []Topic
	glossary         []GlossaryEntry
	roadmap          []string
	dailySuggestions []string
	motivationalTips []string

	byAlias    map[string]int
	byTerm     map[string]int
	questions  []QuizQuestion
	topicTerms [][]string
}

// newCatalog builds the lookup indices for an already validated document.
func newCatalog(doc document) *Catalog {
	c := &Catalog{
		version:          doc.Version,
		defaultTopic:     doc.DefaultTopic,
		topics:           doc.Topics,
		glossary:         doc.Glossary,
		roadmap:          doc.Roadmap,
		dailySuggestions: doc.DailySuggestions,
		motivationalTips: doc.MotivationalTips,
		byAlias:          make(map[string]int),
		byTerm:           make(map[string]int),
		topicTerms:       make([][]string, len(doc.Topics)),
	}

	for i := range c.topics {
		t := &c.topics[i]
		c.byAlias[Normalize(t.ID)] = i
		for _, a := range t.Aliases {
			c.byAlias[Normalize(a)] = i
		}

		terms := []string{Normalize(t.ID)}
		for _, a := range t.Aliases {
			terms = appendUnique(terms, Normalize(a))
		}
		for _, k := range t.Keywords {
			terms = appendUnique(terms, Normalize(k))
		}
		c.topicTerms[i] = terms

		for j := range t.Quiz {
			t.Quiz[j].TopicID = t.ID
			c.questions = append(c.questions, t.Quiz[j])
		}
	}

	for i, g := range c.glossary {
		c.byTerm[Normalize(g.Term)] = i
		for _, a := range g.Aliases {
			c.byTerm[Normalize(a)] = i
		}
	}

	return c
}

// Version returns the catalog's semantic version.
func (c *Catalog) Version() string { return c.version }

// Topics returns all topics in catalog order.
func (c *Catalog) Topics() []Topic { return cloneEach(c.topics, Topic.clone) }

// Glossary returns all glossary entries in catalog order.
func (c *Catalog) Glossary() []GlossaryEntry { return cloneEach(c.glossary, GlossaryEntry.clone) }

// Roadmap returns the study roadmap steps.
func (c *Catalog) Roadmap() []string { return slices.Clone(c.roadmap) }

// DailySuggestions returns the pool of daily activity suggestions.
func (c *Catalog) DailySuggestions() []string { return slices.Clone(c.dailySuggestions) }

// MotivationalTips returns the pool of motivational tips.
func (c *Catalog) MotivationalTips() []string { return slices.Clone(c.motivationalTips) }

// DefaultTopic returns the fallback topic used when free text matches nothing.
func (c *Catalog) DefaultTopic() Topic {
	t, _ := c.FindTopicByAlias(c.defaultTopic)
	return t
}

// FindTopicByAlias resolves a topic by its ID or one of its aliases.
func (c *Catalog) FindTopicByAlias(alias string) (Topic, bool) {
	i, ok := c.byAlias[Normalize(alias)]
	if !ok {
		return Topic{}, false
	}
	return c.topics[i].clone(), true
}

// SearchTopics returns topics whose ID, title, summary, aliases or keywords
// contain the normalized term, in catalog order.
func (c *Catalog) SearchTopics(term string) []Topic {
	q := Normalize(term)
	if q == "" {
		return nil
	}

	var matches []Topic
	for i, t := range c.topics {
		if strings.Contains(Normalize(t.Title), q) || strings.Contains(Normalize(t.Summary), q) {
			matches = append(matches, t.clone())
			continue
		}
		for _, s := range c.topicTerms[i] {
			if strings.Contains(s, q) {
				matches = append(matches, t.clone())
				break
			}
		}
	}
	return matches
}

// MatchQuestionToTopic scores every topic by how many of its aliases and
// keywords appear in the free text and returns the best one. Ties go to the
// earlier topic.
func (c *Catalog) MatchQuestionToTopic(text string) (Topic, bool) {
	norm := Normalize(text)
	if norm == "" {
		return Topic{}, false
	}
	words := make(map[string]bool)
	for _, w := range tokenize(norm) {
		words[w] = true
	}

	best, bestScore := -1, 0
	for i, terms := range c.topicTerms {
		score := 0
		for _, term := range terms {
			if isWord(term) {
				if words[term] {
					score++
				}
			} else if strings.Contains(norm, term) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 {
		return Topic{}, false
	}
	return c.topics[best].clone(), true
}

// AllQuizQuestions returns every question across topics, in catalog order.
func (c *Catalog) AllQuizQuestions() []QuizQuestion {
	return cloneEach(c.questions, QuizQuestion.clone)
}

// LookupGlossary finds a glossary entry by normalized term or alias.
func (c *Catalog) LookupGlossary(term string) (GlossaryEntry, bool) {
	i, ok := c.byTerm[Normalize(term)]
	if !ok {
		return GlossaryEntry{}, false
	}
	return c.glossary[i].clone(), true
}

// Normalize lower-cases s, trims it and collapses inner whitespace runs.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
