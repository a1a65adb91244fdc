package shared

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger builds the process logger and installs it as slog's default.
// Logs go to stderr: stdout is reserved for lint results and report paths.
func InitLogger(format, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if strings.ToLower(format) == "text" {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(h).With("app", "policy-lint")
	slog.SetDefault(logger)
	return logger
}
