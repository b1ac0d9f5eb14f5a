package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/harrison/sgrep/internal/search"
	"github.com/mattn/go-colorable"
)

// Prefix tags every diagnostic line.
const Prefix = "<sgrep>"

// Counts tallies what a ConsoleReporter has rendered.
type Counts struct {
	Matches  int
	Warnings int
	Errors   int
}

// ConsoleReporter renders search events: matches to out, warnings and errors
// to errOut.
//
// Match:      [path:line:]text
// Diagnostic: <sgrep> Warning: message (cause): path
type ConsoleReporter struct {
	out    io.Writer
	errOut io.Writer
	scheme *colorScheme
	mutex  sync.Mutex
	counts Counts
}

var _ search.Reporter = (*ConsoleReporter)(nil)

// NewConsoleReporter creates a reporter. outColor and errColor enable color
// on out and errOut respectively; a colored *os.File writer is wrapped so ANSI
// sequences also render on Windows consoles.
func NewConsoleReporter(out, errOut io.Writer, outColor, errColor bool) *ConsoleReporter {
	if outColor {
		out = colorableWriter(out)
	}
	if errColor {
		errOut = colorableWriter(errOut)
	}
	return &ConsoleReporter{
		out:    out,
		errOut: errOut,
		scheme: newColorScheme(outColor, errColor),
	}
}

func colorableWriter(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return colorable.NewColorable(f)
	}
	return w
}

// ReportMatch prints a matching line, prefixed by its location when asked.
func (r *ConsoleReporter) ReportMatch(m search.Match) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.counts.Matches++
	if m.Location {
		paint(r.out, r.scheme.location, "%s:%d:", m.Path, m.LineNumber)
	}
	fmt.Fprintln(r.out, m.Line)
}

// ReportWarning prints a warning diagnostic.
func (r *ConsoleReporter) ReportWarning(d search.Diagnostic) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.counts.Warnings++
	paint(r.errOut, r.scheme.warn, "%s\n", FormatDiagnostic(d))
}

// ReportError prints an error diagnostic.
func (r *ConsoleReporter) ReportError(d search.Diagnostic) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.counts.Errors++
	paint(r.errOut, r.scheme.fail, "%s\n", FormatDiagnostic(d))
}

// Counts returns the number of events rendered so far.
func (r *ConsoleReporter) Counts() Counts {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.counts
}

// FormatDiagnostic renders d without color or trailing newline.
func FormatDiagnostic(d search.Diagnostic) string {
	if d.Err != nil {
		return fmt.Sprintf("%s %s: %s (%v): %s", Prefix, d.Severity, d.Message, d.Err, d.Path)
	}
	return fmt.Sprintf("%s %s: %s: %s", Prefix, d.Severity, d.Message, d.Path)
}
