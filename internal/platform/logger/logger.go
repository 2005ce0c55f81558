// Package logger provides structured logging setup for the service.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup builds a JSON slog logger at the configured level, installs it
// as the process default, and returns it. An unrecognized level falls
// back to info with a warning on stderr.
func Setup(logLevel string) *slog.Logger {
	return SetupWithWriter(logLevel, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output writer, used by
// tests to capture log lines.
func SetupWithWriter(logLevel string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		tmp := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmp.Warn("invalid log level configured, using default",
			"configured_level", logLevel,
			"default_level", "info")
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
