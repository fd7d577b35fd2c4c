package logger

import (
	"log/slog"
	"os"
)

// New creates the application logger: JSON output at info level.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}
