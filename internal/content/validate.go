package content

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog format major version this build understands.
const SupportedMajor = "v1"

// validateDocument performs all structural checks on a decoded catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateDocument(doc document) error {
	var errs []string

	switch {
	case !semver.IsValid(doc.Version):
		errs = append(errs, fmt.Sprintf("version %q is not a valid semantic version", doc.Version))
	case semver.Major(doc.Version) != SupportedMajor:
		errs = append(errs, fmt.Sprintf("version %q is not supported (want %s.x.y)", doc.Version, SupportedMajor))
	}

	// Aliases share one namespace with topic IDs.
	owner := make(map[string]string)
	claim := func(key, topicID string) {
		key = Normalize(key)
		if prev, ok := owner[key]; ok && prev != topicID {
			errs = append(errs, fmt.Sprintf("alias %q used by both %q and %q", key, prev, topicID))
			return
		}
		owner[key] = topicID
	}

	ids := make(map[string]bool, len(doc.Topics))
	for _, t := range doc.Topics {
		if ids[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", t.ID))
		}
		ids[t.ID] = true
		if t.ID != Normalize(t.ID) || strings.Contains(t.ID, " ") {
			errs = append(errs, fmt.Sprintf("topic ID %q must be lower-case without spaces", t.ID))
		}
		claim(t.ID, t.ID)
		for _, a := range t.Aliases {
			claim(a, t.ID)
		}

		for i, q := range t.Quiz {
			prefix := fmt.Sprintf("topic %q question %d", t.ID, i+1)
			if strings.TrimSpace(q.Answer) == "" {
				errs = append(errs, prefix+": answer is empty")
				continue
			}
			if len(q.Choices) > 0 && !containsFold(q.Choices, q.Answer) {
				errs = append(errs, fmt.Sprintf("%s: answer %q is not one of the choices", prefix, q.Answer))
			}
		}

		for i, l := range t.Labs {
			if len(l.Steps) == 0 {
				errs = append(errs, fmt.Sprintf("topic %q lab %d (%s): no steps", t.ID, i+1, l.Title))
			}
		}
	}

	if doc.DefaultTopic == "" {
		errs = append(errs, "default_topic is not set")
	} else if !ids[doc.DefaultTopic] {
		errs = append(errs, fmt.Sprintf("default_topic %q references nonexistent topic", doc.DefaultTopic))
	}

	terms := make(map[string]bool, len(doc.Glossary))
	for _, g := range doc.Glossary {
		keys := append([]string{g.Term}, g.Aliases...)
		for _, k := range keys {
			k = Normalize(k)
			if terms[k] {
				errs = append(errs, fmt.Sprintf("duplicate glossary term: %q", k))
			}
			terms[k] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}
