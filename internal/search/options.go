package search

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Pattern is the search criterion: either a literal substring or a compiled
// regular expression. The zero value is the empty literal, which matches
// every line.
type Pattern struct {
	Literal string
	Regex   *regexp.Regexp
}

// LiteralPattern returns a Pattern matching the substring s.
func LiteralPattern(s string) Pattern {
	return Pattern{Literal: s}
}

// RegexPattern returns a Pattern backed by the compiled expression re.
func RegexPattern(re *regexp.Regexp) Pattern {
	return Pattern{Regex: re}
}

// IsRegex reports whether the pattern is a regular expression.
func (p Pattern) IsRegex() bool {
	return p.Regex != nil
}

// String returns the literal or the source text of the expression.
func (p Pattern) String() string {
	if p.Regex != nil {
		return p.Regex.String()
	}
	return p.Literal
}

// Options is the resolved, read-only configuration of a search run.
// It is built once before traversal starts and never modified afterwards.
type Options struct {
	// Recursive enables descending into directories below the root
	Recursive bool
	// ShowLocation prefixes each match with path:line:
	ShowLocation bool
	// FollowLinks resolves symbolic links instead of skipping them
	FollowLinks bool
	// CaseInsensitive folds case for literal patterns; ignored for Regex
	CaseInsensitive bool
	// ShowWarnings enables warning diagnostics
	ShowWarnings bool
	// RelativePaths renders paths relative to WorkingDir
	RelativePaths bool
	// Pattern is the search criterion
	Pattern Pattern
	// WorkingDir is the canonical working directory at startup
	WorkingDir string
	// LogicalWorkingDir is the working directory as the shell named it,
	// which may pass through symbolic links. Empty means WorkingDir.
	LogicalWorkingDir string
}

// DisplayPath renders p the way it is reported to the user.
// With RelativePaths set, p is made absolute and printed relative to the
// working directory. Paths reached without following links sit under the
// logical working directory, followed ones under the canonical one, so the
// first base that contains p wins. If neither does, p is rendered relative
// to the canonical directory, or absolute when that fails.
func (o Options) DisplayPath(p string) string {
	if !o.RelativePaths {
		return p
	}

	logical := o.LogicalWorkingDir
	if logical == "" {
		logical = o.WorkingDir
	}

	abs := p
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(logical, abs)
	}
	for _, base := range []string{logical, o.WorkingDir} {
		if rel, ok := relativeTo(base, abs); ok {
			return rel
		}
	}
	if rel, err := filepath.Rel(o.WorkingDir, abs); err == nil {
		return rel
	}
	return abs
}

// relativeTo renders abs relative to base when abs lies inside base.
func relativeTo(base, abs string) (string, bool) {
	if base == "" {
		return "", false
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
