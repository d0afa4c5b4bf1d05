// Package log configures structured logging for surveydash using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup configures the default slog logger from the verbosity flags and
// the configured level name. Flags win over the level name:
//
//   - quiet mode:   only WARN and ERROR messages
//   - verbose mode: DEBUG and above
//   - otherwise:    the parsed level, INFO when empty or unknown
//
// Output is written to stderr using slog.TextHandler.
func Setup(verbose, quiet bool, level string) {
	SetupWriter(os.Stderr, verbose, quiet, level)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, verbose, quiet bool, level string) {
	var lvl slog.Level
	switch {
	case quiet:
		lvl = slog.LevelWarn
	case verbose:
		lvl = slog.LevelDebug
	default:
		lvl = ParseLevel(level)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})
	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a
// slog level. Anything else is INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
