package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a logger that discards every record.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
