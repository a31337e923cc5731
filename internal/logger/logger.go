package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const opIDKey ctxKey = "op_id"

// GenerateOpID creates a new UUID for correlating an intent's log lines
func GenerateOpID() string {
	return uuid.NewString()
}

// WithOpID returns a new context containing the operation ID
func WithOpID(ctx context.Context, opID string) context.Context {
	return context.WithValue(ctx, opIDKey, opID)
}

// GetOpID extracts the operation ID from the context, or "" if absent
func GetOpID(ctx context.Context) string {
	if v := ctx.Value(opIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// FromContext returns a logger that includes the op_id attribute when present
func FromContext(ctx context.Context) *slog.Logger {
	if id := GetOpID(ctx); id != "" {
		return slog.Default().With(AttrKeyOpID, id)
	}
	return slog.Default()
}

// InitLogger configures the process-wide default logger
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter configures the default logger with a custom writer.
// Used by tests to capture output.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler.WithAttrs(cfg.BaseAttributes()))
	slog.SetDefault(logger)
}

// Debug logs at debug level using the default logger
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs at info level using the default logger
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs at warn level using the default logger
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs at error level using the default logger
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
