// Package logger builds the charmbracelet/log loggers used across wordsift.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a stderr logger so stdout stays reserved for results.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, log.InfoLevel)
}

// NewWithWriter creates a logger writing to w at the given level.
func NewWithWriter(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}

// LevelFor maps the verbosity flags onto a log level.
func LevelFor(verbose, quiet bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}
