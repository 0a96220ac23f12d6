package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	RunID = "runId"
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"

	FormatJSON = "json"
	FormatText = "text"
)

type runKey struct{}

// New creates a structured logger writing to dest. JSON is the default format;
// "text" selects slog's key=value handler.
func New(level, format string, dest io.Writer) *slog.Logger {
	if dest == nil {
		dest = os.Stderr
	}
	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     Level(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Rename the time key to "timestamp"
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	}
	var handler slog.Handler
	if strings.EqualFold(format, FormatText) {
		handler = slog.NewTextHandler(dest, opts)
	} else {
		handler = slog.NewJSONHandler(dest, opts)
	}
	return slog.New(handler)
}

// Level parses level names case-insensitively, unknown names map to INFO.
func Level(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case DEBUG:
		return slog.LevelDebug
	case WARN, "WARNING":
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Nop returns a logger discarding every record.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// WithRunID stores run identifier on the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runKey{}, runID)
}

// FromContext returns logger decorated with "known" context values.
func FromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	if ctx == nil {
		return logger
	}
	if runID, ok := ctx.Value(runKey{}).(string); ok && runID != "" {
		return logger.With(RunID, runID)
	}
	return logger
}
