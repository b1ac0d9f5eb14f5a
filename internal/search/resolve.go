package search

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve applies the symbolic link policy to path.
//
// Without FollowLinks a symbolic link yields ErrSkip and any other path is
// returned unchanged. With FollowLinks the path is canonicalized: every link
// is dereferenced and the result made absolute. filepath.EvalSymlinks bounds
// the number of hops, so a link cycle fails with a *ResolveError instead of
// looping.
func Resolve(opts Options, path string) (string, error) {
	if !opts.FollowLinks {
		info, err := os.Lstat(path)
		if err != nil {
			return "", &ResolveError{Path: path, Err: err}
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return "", ErrSkip
		}
		return path, nil
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", &ResolveError{Path: path, Err: err}
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", &ResolveError{Path: path, Err: fmt.Errorf("absolute path: %w", err)}
	}
	return abs, nil
}
