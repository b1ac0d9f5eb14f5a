package search

import (
	"errors"
	"fmt"
)

// ErrSkip is returned by Resolve when a path is deliberately not visited,
// i.e. a symbolic link while links are not followed.
var ErrSkip = errors.New("path skipped")

// ErrInvalidEncoding is reported when a line is not valid UTF-8.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// ResolveError describes a failure to canonicalize a path while following
// symbolic links.
type ResolveError struct {
	Path string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Path, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
