// Package logging configures the process-wide structured logger. Verbosity
// follows the repeated -v convention: 0 errors only, 1 warnings, 2 info,
// 3 and above debug. All log output goes to stderr so it never interferes
// with statistics written to stdout.
package logging

import (
	"io"
	"log/slog"
)

// LevelForVerbosity maps a -v count to a slog level.
func LevelForVerbosity(verbosity int) slog.Level {
	switch verbosity {
	case 0:
		return slog.LevelError
	case 1:
		return slog.LevelWarn
	case 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Setup installs a leveled text handler writing to out as the default
// logger and returns it.
func Setup(out io.Writer, verbosity int) *slog.Logger {
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: LevelForVerbosity(verbosity),
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
