// Package logging builds the diagnostic logger written to standard error.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/kokjohn0824/cat-facts-cli/internal/ui"
)

// Prefix tags every log line
const Prefix = "cat-facts-cli"

// Flags carries the command-line verbosity switches
type Flags struct {
	Debug   bool
	Verbose bool
	Quiet   bool
}

// ResolveLevel picks the effective level name. Debug wins over quiet,
// quiet wins over verbose, and the configured level applies otherwise.
func ResolveLevel(configured string, f Flags) string {
	switch {
	case f.Debug:
		return "debug"
	case f.Quiet:
		return "error"
	case f.Verbose:
		return "info"
	case configured == "":
		return "warn"
	default:
		return configured
	}
}

// New creates a logger writing to w at the named level.
// Unknown level names fall back to warn.
func New(w io.Writer, level string, color bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           lvl,
		ReportTimestamp: lvl == log.DebugLevel,
	})
	logger.SetStyles(ui.LogStyles())
	if !color {
		logger.SetColorProfile(termenv.Ascii)
	}

	return logger
}
