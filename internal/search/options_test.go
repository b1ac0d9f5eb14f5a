package search

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayPath(t *testing.T) {
	wd := filepath.FromSlash("/home/u")

	tests := []struct {
		name     string
		relative bool
		path     string
		want     string
	}{
		{"unchanged without relative", false, filepath.FromSlash("/home/u/sub/file.txt"), filepath.FromSlash("/home/u/sub/file.txt")},
		{"relative path unchanged without relative", false, filepath.FromSlash("sub/file.txt"), filepath.FromSlash("sub/file.txt")},
		{"absolute under working dir", true, filepath.FromSlash("/home/u/sub/file.txt"), filepath.FromSlash("sub/file.txt")},
		{"relative input", true, filepath.FromSlash("sub/file.txt"), filepath.FromSlash("sub/file.txt")},
		{"working dir itself", true, wd, "."},
		{"outside working dir", true, filepath.FromSlash("/etc/hosts"), filepath.FromSlash("../../etc/hosts")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{RelativePaths: tt.relative, WorkingDir: wd}
			assert.Equal(t, tt.want, opts.DisplayPath(tt.path))
		})
	}
}

func TestDisplayPathLinkedWorkingDir(t *testing.T) {
	logical := filepath.FromSlash("/home/u")
	canonical := filepath.FromSlash("/data/users/u")
	opts := Options{RelativePaths: true, WorkingDir: canonical, LogicalWorkingDir: logical}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"reached through the logical directory", filepath.FromSlash("/home/u/sub/file.txt"), filepath.FromSlash("sub/file.txt")},
		{"reached through a followed link", filepath.FromSlash("/data/users/u/sub/file.txt"), filepath.FromSlash("sub/file.txt")},
		{"relative input", filepath.FromSlash("sub/file.txt"), filepath.FromSlash("sub/file.txt")},
		{"outside both", filepath.FromSlash("/data/other.txt"), filepath.FromSlash("../../other.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, opts.DisplayPath(tt.path))
		})
	}
}
