// Package logging configures the diagnostic logger. Primary command output
// (intent lines, paths, confirmations) goes to stdout directly; the logger
// carries verbose diagnostics on stderr.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Verbose lowers the threshold
// from Warn to Debug so detection and fallback notes become visible.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
