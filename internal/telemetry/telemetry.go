// Package telemetry wraps zerolog so dag and ktree can emit optional,
// structured diagnostics without either package importing zerolog
// directly. Every entry point defaults to a no-op logger: diagnostics
// are strictly opt-in and cost nothing on the hot path until a caller
// supplies one via WithLogger.
package telemetry

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is the structured logger type shared across this module's
// build/intern diagnostics. It is an alias, not a wrapper type, so
// callers who already hold a zerolog.Logger can pass it straight
// through WithLogger without an adapter.
type Logger = zerolog.Logger

// Disabled returns a Logger that discards everything it's given.
// This is the default for a fresh Arena or a fresh K-tree build.
func Disabled() Logger {
	return zerolog.Nop()
}

// New builds a Logger that writes level-filtered lines to w, either as
// JSON (the zerolog default) or as human-readable console output.
func New(w io.Writer, level zerolog.Level, console bool) Logger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
