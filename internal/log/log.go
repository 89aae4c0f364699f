// Package log builds the slog loggers used for diagnostic output
//
// User-facing warnings (missing files, malformed records) are plain lines on
// the error writer; the logger here only carries tracing that is useful when
// running with --verbose, such as which file is being read and how many
// records matched.
package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a text logger writing to w
// When verbose is false only warnings and errors are emitted
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewSwitchableLogger creates a quiet text logger writing to w together with
// a function that turns verbose output on or off later. The composition root
// builds its components before flags are parsed, so the level is set afterwards
func NewSwitchableLogger(w io.Writer) (*slog.Logger, func(verbose bool)) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	setVerbose := func(verbose bool) {
		if verbose {
			level.Set(slog.LevelDebug)
		} else {
			level.Set(slog.LevelWarn)
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), setVerbose
}

// Nop returns a logger that discards everything
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrNop returns logger, or a discarding logger when logger is nil
func OrNop(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}
