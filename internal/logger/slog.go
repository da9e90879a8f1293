package logger

import (
	"io"
	"log/slog"
)

// NewSlogLogger создает и настраивает новый JSON логгер
func NewSlogLogger(out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	handler := slog.NewJSONHandler(out, opts)
	logger := slog.New(handler)

	return logger
}
