package logger

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogger builds the application logger shared by the composition root,
// the stores and the use cases.
func SetupLogger(level string) *slog.Logger {
	return SetupLoggerWithFormat(level, "text")
}

func SetupLoggerWithFormat(level, format string) *slog.Logger {
	options := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, options)
	} else {
		handler = slog.NewTextHandler(os.Stdout, options)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
