package search

// Severity classifies a Diagnostic.
type Severity int

const (
	// SeverityWarning is suppressed unless Options.ShowWarnings is set
	SeverityWarning Severity = iota
	// SeverityError is always reported
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Match is a single matching line.
type Match struct {
	// Path is the display path of the file
	Path string
	// LineNumber is 1-based
	LineNumber int
	// Line is the line text without its terminator
	Line string
	// Location asks the sink to prefix the line with Path:LineNumber:
	Location bool
}

// Diagnostic is a warning or error tied to a path.
type Diagnostic struct {
	Severity Severity
	// Path is the display path the diagnostic refers to
	Path    string
	Message string
	// Err is the underlying cause, if any
	Err error
}

// Reporter receives everything the engine observes. Implementations own the
// formatting; the engine never writes to a stream directly.
type Reporter interface {
	ReportMatch(m Match)
	ReportWarning(d Diagnostic)
	ReportError(d Diagnostic)
}

// Logger receives debug tracing of the traversal.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
}

type nopLogger struct{}

func (nopLogger) LogTrace(string) {}
func (nopLogger) LogDebug(string) {}

// emitter applies the warning policy and path rendering in one place so the
// scanner and walker only describe what happened.
type emitter struct {
	opts     Options
	reporter Reporter
}

func (e emitter) match(path string, lineNumber int, line string) {
	e.reporter.ReportMatch(Match{
		Path:       e.opts.DisplayPath(path),
		LineNumber: lineNumber,
		Line:       line,
		Location:   e.opts.ShowLocation,
	})
}

func (e emitter) warn(path, message string, err error) {
	if !e.opts.ShowWarnings {
		return
	}
	e.reporter.ReportWarning(Diagnostic{
		Severity: SeverityWarning,
		Path:     e.opts.DisplayPath(path),
		Message:  message,
		Err:      err,
	})
}

func (e emitter) fail(path, message string, err error) {
	e.reporter.ReportError(Diagnostic{
		Severity: SeverityError,
		Path:     e.opts.DisplayPath(path),
		Message:  message,
		Err:      err,
	})
}
