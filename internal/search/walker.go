package search

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// node is a pending path on the walker's stack.
type node struct {
	path   string
	root   bool
	parent *frame
}

// frame is a directory on the path from the root to a node.
type frame struct {
	dir    string
	parent *frame
}

// onBranch reports whether dir is f or one of its ancestors.
func (f *frame) onBranch(dir string) bool {
	for ; f != nil; f = f.parent {
		if f.dir == dir {
			return true
		}
	}
	return false
}

// Walker visits a path tree depth-first and scans every regular file it
// reaches. Pending paths live on an explicit stack, so nesting depth does not
// grow the goroutine stack.
type Walker struct {
	opts    Options
	emit    emitter
	matcher *Matcher
	logger  Logger
	visited int
	scanned int
}

// NewWalker creates a Walker reporting to r. A nil logger discards tracing.
func NewWalker(opts Options, r Reporter, logger Logger) *Walker {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Walker{
		opts:    opts,
		emit:    emitter{opts: opts, reporter: r},
		matcher: NewMatcher(opts),
		logger:  logger,
	}
}

// Walk searches root with a fresh Walker and no tracing.
func Walk(opts Options, r Reporter, root string) {
	NewWalker(opts, r, nil).Walk(root)
}

// Walk visits root. A root directory is always listed; nested directories
// are listed only when Options.Recursive is set. Entries are visited in the
// order the directory listing returns them.
func (w *Walker) Walk(root string) {
	stack := []node{{path: root, root: true}}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dir, children := w.visit(n)
		if len(children) == 0 {
			continue
		}
		parent := &frame{dir: dir, parent: n.parent}
		// Reverse push keeps the pre-order of a recursive walk
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, node{path: children[i], parent: parent})
		}
	}
	w.logger.LogDebug(fmt.Sprintf("walk of %s done: %d paths visited, %d files scanned", root, w.visited, w.scanned))
}

// visit handles a single node. For a listed directory it returns the
// directory's path and the paths of its entries.
func (w *Walker) visit(n node) (string, []string) {
	w.visited++
	w.logger.LogTrace("visit " + n.path)

	if _, err := os.Stat(n.path); errors.Is(err, fs.ErrNotExist) {
		w.emit.fail(n.path, "Path does not exist", nil)
		return "", nil
	}

	resolved, err := Resolve(w.opts, n.path)
	if errors.Is(err, ErrSkip) {
		w.logger.LogDebug("skipping symbolic link " + n.path)
		w.emit.warn(n.path, "Ignoring path", nil)
		return "", nil
	}
	if err != nil {
		var resolveErr *ResolveError
		if errors.As(err, &resolveErr) {
			err = resolveErr.Err
		}
		w.emit.fail(n.path, "Cannot resolve path", err)
		return "", nil
	}
	if resolved != n.path {
		w.logger.LogTrace(fmt.Sprintf("resolved %s -> %s", n.path, resolved))
	}

	info, err := os.Stat(resolved)
	if err != nil {
		w.emit.fail(resolved, "Cannot open path", err)
		return "", nil
	}

	switch {
	case info.Mode().IsRegular():
		w.scanned++
		scanFile(w.emit, w.matcher, resolved)
		return "", nil
	case info.IsDir():
		if !n.root && !w.opts.Recursive {
			w.logger.LogDebug("not descending into " + resolved)
			return "", nil
		}
		if w.opts.FollowLinks && n.parent.onBranch(resolved) {
			w.emit.fail(n.path, "Symbolic link cycle", nil)
			return "", nil
		}
		return resolved, w.list(resolved)
	default:
		w.emit.fail(resolved, "Cannot open path", nil)
		return "", nil
	}
}

// dirReader is the part of *os.File that list needs.
type dirReader interface {
	ReadDir(n int) ([]fs.DirEntry, error)
}

// list returns the entry paths of dir sorted by name.
func (w *Walker) list(dir string) []string {
	f, err := os.Open(dir)
	if err != nil {
		w.emit.fail(dir, "Cannot iterate directory", err)
		return nil
	}
	defer f.Close()

	return w.entries(dir, f)
}

// entries reads every entry of dir from r. A read error part way through is
// reported, and the entries read before it are still returned so they get
// visited.
func (w *Walker) entries(dir string, r dirReader) []string {
	entries, err := r.ReadDir(-1)
	if err != nil {
		w.emit.fail(dir, "Cannot read all directory entries", err)
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths
}
