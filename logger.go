package setcover

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with setcover-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithMode adds a mode field to the logger.
func (l *Logger) WithMode(mode Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode.String()),
	}
}

// WithDataset adds a dataset name field to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// LogEncode logs the dense encoding step of ModeBitset.
func (l *Logger) LogEncode(ctx context.Context, bitmap Bitmap, sets, universe int, elapsed time.Duration) {
	l.DebugContext(ctx, "sets encoded",
		"bitmap", bitmap.String(),
		"sets", sets,
		"universe", universe,
		"elapsed", elapsed,
	)
}

// LogCover logs a completed or failed cover computation. The mode is taken
// from WithMode.
func (l *Logger) LogCover(ctx context.Context, sets, coverSize, rounds int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "cover failed",
			"sets", sets,
			"rounds", rounds,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "cover completed",
			"sets", sets,
			"cover", coverSize,
			"rounds", rounds,
			"elapsed", elapsed,
		)
	}
}
