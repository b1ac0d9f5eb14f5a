// Package search implements the traversal-and-match engine behind sgrep.
//
// A search starts from a single path. Files are scanned line by line with a
// Matcher; directories are listed and their entries visited depth-first. The
// top-level directory is always listed, nested directories only when
// Options.Recursive is set.
//
// # Main Components
//
//   - Matcher decides whether a line matches a literal or regular expression
//   - IsBinary classifies the first 1024 bytes of a file as text or binary
//   - Resolve applies the symbolic link policy to a path
//   - ScanFile scans one regular file
//   - Walker drives the traversal with an explicit stack of pending paths
//
// Every observation is routed to a Reporter. The engine never writes to a
// stream itself, so tests inject a recording Reporter and assert on events.
//
// # Usage
//
//	opts := search.Options{
//	    Pattern:    search.LiteralPattern("TODO"),
//	    Recursive:  true,
//	    WorkingDir: cwd,
//	}
//	search.Walk(opts, reporter, "./internal")
//
// Failures are local to the path that produced them: a missing file, an
// unreadable directory or a dangling link is reported and the walk continues
// with the remaining paths.
package search
