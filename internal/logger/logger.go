package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/recerqa/recerqa-ai/internal/config"
)

// New creates a preconfigured slog.Logger writing JSON at the given level.
func New(level string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler)
}

func fromConfig(cfg *config.Config) *slog.Logger {
	return New(cfg.LogLevel)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
