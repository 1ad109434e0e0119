package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is usable before Init for early startup paths and tests; Init
// swaps in the configured production handler.
var Log = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Init sets up the package-level structured logger. LOG_LEVEL controls
// verbosity (debug, info, warn, error); anything else means info.
func Init() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
