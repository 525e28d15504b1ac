package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewVerboseEnablesDebugLevel(t *testing.T) {
	if got := New(true).GetLevel(); got != zerolog.DebugLevel {
		t.Fatalf("expected DebugLevel, got %v", got)
	}
	if got := New(false).GetLevel(); got != zerolog.InfoLevel {
		t.Fatalf("expected InfoLevel, got %v", got)
	}
}

func TestSetVerboseAndSilenceDoNotPanic(t *testing.T) {
	SetVerbose(true)
	Debug().Msg("debug message")
	SetVerbose(false)
	Info().Msg("info message")
	Silence()
	Warn().Msg("should not print")
	Error().Msg("should not print either")
}
