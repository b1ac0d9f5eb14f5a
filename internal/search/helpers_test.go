package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder is a Reporter that keeps every event in order.
type recorder struct {
	matches  []Match
	warnings []Diagnostic
	errors   []Diagnostic
}

func (r *recorder) ReportMatch(m Match)        { r.matches = append(r.matches, m) }
func (r *recorder) ReportWarning(d Diagnostic) { r.warnings = append(r.warnings, d) }
func (r *recorder) ReportError(d Diagnostic)   { r.errors = append(r.errors, d) }

// matchedPaths returns the Path of every match, in order.
func (r *recorder) matchedPaths() []string {
	paths := make([]string, 0, len(r.matches))
	for _, m := range r.matches {
		paths = append(paths, m.Path)
	}
	return paths
}

// writeFile creates dir/name (and parents) with the given content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// symlink creates link pointing at target, skipping the test where the
// platform refuses.
func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
}
