// Package logger renders sgrep output and traces the search.
//
// ConsoleReporter is the sink for the search engine: matches go to one
// writer, warnings and errors to another, optionally colorized.
// ConsoleLogger is a level-filtered, timestamped logger for everything that
// is not a search result: walk tracing, configuration notes, run summaries.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level orders log messages by verbosity.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	// LevelError emits nothing from the logger; it silences warnings while
	// search errors still reach the reporter.
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

var levelColors = map[Level]color.Attribute{
	LevelTrace: color.FgHiBlack,
	LevelDebug: color.FgCyan,
	LevelInfo:  color.FgBlue,
	LevelWarn:  color.FgYellow,
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel maps a level name (case-insensitive, surrounding space ignored)
// to its Level.
func ParseLevel(name string) (Level, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for level, n := range levelNames {
		if n == name {
			return level, true
		}
	}
	return LevelInfo, false
}

// IsValidLevel reports whether level names a known log level.
func IsValidLevel(level string) bool {
	_, ok := ParseLevel(level)
	return ok
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines. Level tags are
// colored when writing to a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	level       Level
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to writer; a nil writer
// discards everything. An unknown logLevel falls back to info.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	level, _ := ParseLevel(logLevel)
	return &ConsoleLogger{
		writer:      writer,
		level:       level,
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == os.Stdout || w == os.Stderr {
		// fatih/color already accounts for NO_COLOR and non-TTY output
		return !color.NoColor
	}
	return false
}

// LogTrace logs per-path walk details.
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.log(LevelTrace, message)
}

// LogDebug logs traversal decisions such as skipped directories.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.log(LevelDebug, message)
}

// LogInfo logs run summaries.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.log(LevelInfo, message)
}

// LogWarn logs configuration that will not behave as the user may expect.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.log(LevelWarn, message)
}

func (cl *ConsoleLogger) log(level Level, message string) {
	if cl.writer == nil || level < cl.level {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	tag := strings.ToUpper(level.String())
	if cl.colorOutput {
		tag = color.New(levelColors[level]).Sprint(tag)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", time.Now().Format("15:04:05"), tag, message)
}
