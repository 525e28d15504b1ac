// Package logging provides the process-wide structured logger used across
// the compiler's ambient layers (spec SPEC_FULL.md §10.1). It wraps
// rs/zerolog the way a small CLI tool typically does: one configured
// zerolog.Logger built from the -v/--verbose flag, exposed through a few
// package-level helpers rather than threaded explicitly through every call.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = New(false)

// New builds a console-formatted logger gated at info level, or debug level
// when verbose is set.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: false}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// SetVerbose reconfigures the package-level logger, called once from
// cmd/hqlc's root command through cobra.OnInitialize after flags are parsed.
func SetVerbose(verbose bool) {
	log = New(verbose)
}

// Silence routes all log output to io.Discard — used by tests that exercise
// code paths which log as a side effect.
func Silence() {
	log = zerolog.New(io.Discard)
}

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
