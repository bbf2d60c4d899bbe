// Package normalize canonicalizes counterparty names so that spelling
// variants of the same company collapse to one identity. The normalized
// form is the grouping key for vendor aggregation and part of the
// logical-duplicate key in strict mode.
package normalize

import (
	"regexp"
	"strings"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
)

// Legal-suffix noise removed from uppercased names. Word-bounded so that
// e.g. "LINCOLN" keeps its "INC".
var legalSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`\bSP\. Z O\.O\b`),
	regexp.MustCompile(`\bSPÓŁKA Z O\.O\b`),
	regexp.MustCompile(`\bS\.A\b`),
	regexp.MustCompile(`\bINC\b`),
	regexp.MustCompile(`\bLTD\b`),
	regexp.MustCompile(`\bLLC\b`),
	regexp.MustCompile(`\bGMBH\b`),
}

var (
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Entity returns the canonical uppercase identity for a raw vendor name.
// Empty input maps to domain.UnknownEntity. Entity is idempotent:
// Entity(Entity(x)) == Entity(x).
func Entity(name string) string {
	if strings.TrimSpace(name) == "" {
		return domain.UnknownEntity
	}
	n := strings.ToUpper(name)
	n = stripSuffixes(n)
	n = punctuation.ReplaceAllString(n, "")
	// Dotted spellings like "L.T.D" only become word-bounded suffix tokens
	// once the punctuation is gone, so strip again.
	n = stripSuffixes(n)
	n = whitespace.ReplaceAllString(n, " ")
	n = strings.TrimSpace(n)
	if n == "" {
		return domain.UnknownEntity
	}
	return n
}

func stripSuffixes(n string) string {
	for _, suffix := range legalSuffixes {
		n = suffix.ReplaceAllString(n, "")
	}
	return n
}
