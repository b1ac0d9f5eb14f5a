package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher decides whether a single line satisfies the search pattern.
// The needle is prepared once so Match does no per-call setup beyond folding
// the line itself.
type Matcher struct {
	pattern Pattern
	fold    bool
	needle  string
	caser   cases.Caser
}

// NewMatcher prepares a Matcher for opts.Pattern. CaseInsensitive only takes
// effect for literal patterns; a regular expression encodes its own case
// sensitivity.
func NewMatcher(opts Options) *Matcher {
	m := &Matcher{
		pattern: opts.Pattern,
		needle:  opts.Pattern.Literal,
	}
	if !opts.Pattern.IsRegex() && opts.CaseInsensitive {
		m.fold = true
		m.caser = cases.Fold()
		m.needle = m.caser.String(m.needle)
	}
	return m
}

// Match reports whether line matches.
func (m *Matcher) Match(line string) bool {
	if m.pattern.Regex != nil {
		return m.pattern.Regex.MatchString(line)
	}
	if m.fold {
		return strings.Contains(m.caser.String(line), m.needle)
	}
	return strings.Contains(line, m.needle)
}
