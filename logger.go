package arx

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with arx-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogScan logs a table scan.
func (l *Logger) LogScan(ctx context.Context, rows, items int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"rows", rows,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "scan completed",
			"rows", rows,
			"items", items,
			"duration", duration,
		)
	}
}

// LogMerge logs the merge of a partial index.
func (l *Logger) LogMerge(ctx context.Context, partialItems, totalItems int) {
	l.DebugContext(ctx, "partial index merged",
		"partial_items", partialItems,
		"items", totalItems,
	)
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, op string, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot "+op+" failed",
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot "+op+" completed",
			"bytes", bytes,
		)
	}
}
