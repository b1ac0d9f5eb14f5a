package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// colorScheme holds the three accents used in search output.
// Cyan: match location prefix
// Yellow: warnings
// Red: errors
type colorScheme struct {
	location *color.Color
	warn     *color.Color
	fail     *color.Color
}

// newColorScheme creates the output scheme. The location accent decorates
// the match stream and the warn/fail accents the diagnostic stream, so each
// is switched on or off with its own stream. Colors are forced explicitly so
// the choice does not depend on fatih/color's stdout TTY detection.
func newColorScheme(matchColor, diagColor bool) *colorScheme {
	return &colorScheme{
		location: forceColor(color.New(color.FgCyan), matchColor),
		warn:     forceColor(color.New(color.FgYellow), diagColor),
		fail:     forceColor(color.New(color.FgRed), diagColor),
	}
}

func forceColor(c *color.Color, enabled bool) *color.Color {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// paint writes the formatted text to w with c active. The reset sequence is
// deferred so it is written even if formatting panics.
func paint(w io.Writer, c *color.Color, format string, args ...interface{}) {
	c.SetWriter(w)
	defer c.UnsetWriter(w)
	fmt.Fprintf(w, format, args...)
}
