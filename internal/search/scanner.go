package search

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ScanFile searches one regular file and reports every matching line.
// Binary files are skipped with a warning. A line that cannot be read or is
// not valid UTF-8 stops the scan of that file with a warning. The file is
// closed on every return path.
func ScanFile(opts Options, m *Matcher, r Reporter, path string) {
	scanFile(emitter{opts: opts, reporter: r}, m, path)
}

func scanFile(e emitter, m *Matcher, path string) {
	f, err := os.Open(path)
	if err != nil {
		e.fail(path, "Cannot open file", err)
		return
	}
	defer f.Close()

	binary, err := IsBinary(f)
	if err != nil {
		e.fail(path, "Cannot open file", err)
		return
	}
	if binary {
		e.warn(path, "Ignoring binary file", nil)
		return
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		e.fail(path, "Cannot seek in file", err)
		return
	}

	reader := bufio.NewReader(f)
	for lineNumber := 1; ; lineNumber++ {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			e.warn(path, "Problem reading from file", err)
			return
		}
		if line == "" && err != nil {
			// EOF right after the last terminator
			return
		}

		line = trimLineEnding(line)
		if !utf8.ValidString(line) {
			e.warn(path, "Problem reading from file", ErrInvalidEncoding)
			return
		}
		if m.Match(line) {
			e.match(path, lineNumber, line)
		}

		if err != nil {
			return
		}
	}
}

// trimLineEnding strips a trailing "\n" or "\r\n".
func trimLineEnding(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	line = line[:len(line)-1]
	return strings.TrimSuffix(line, "\r")
}
