package radixheap

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with radixheap-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is nil,
// a default text handler to stderr is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})

	return &Logger{Logger: slog.New(handler)}
}

// WithBaseline adds a baseline field to the logger.
func (l *Logger) WithBaseline(baseline uint32) *Logger {
	return &Logger{Logger: l.Logger.With("baseline", baseline)}
}

// WithClass adds a distance class field to the logger.
func (l *Logger) WithClass(class int) *Logger {
	return &Logger{Logger: l.Logger.With("class", class)}
}
