package kdgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/kdgo/geom"
)

// Logger wraps slog.Logger with kdgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithIndex adds the backend name to the logger.
func (l *Logger) WithIndex(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", name),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(ctx context.Context, p *geom.Point, added bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"point", pointAttr(p),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "insert completed",
			"point", pointAttr(p),
			"added", added,
		)
	}
}

// LogBatchInsert logs a batch insert operation.
func (l *Logger) LogBatchInsert(ctx context.Context, count, added int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch insert aborted",
			"total", count,
			"added", added,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch insert completed",
			"total", count,
			"added", added,
			"duplicates", count-added,
		)
	}
}

// LogOutOfBounds logs a point inserted outside the index bounds.
func (l *Logger) LogOutOfBounds(ctx context.Context, p geom.Point, bounds geom.Rect) {
	l.WarnContext(ctx, "point outside index bounds",
		"point", p.String(),
		"bounds", bounds.String(),
	)
}

// LogRange logs a range query.
func (l *Logger) LogRange(ctx context.Context, r *geom.Rect, results int, err error) {
	rect := "<nil>"
	if r != nil {
		rect = r.String()
	}
	if err != nil {
		l.ErrorContext(ctx, "range query failed",
			"rect", rect,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "range query completed",
			"rect", rect,
			"results", results,
		)
	}
}

// LogNearest logs a nearest-neighbour query.
func (l *Logger) LogNearest(ctx context.Context, q *geom.Point, found bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "nearest query failed",
			"query", pointAttr(q),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "nearest query completed",
			"query", pointAttr(q),
			"found", found,
		)
	}
}

// LogNearestBatch logs a batch of nearest-neighbour queries.
func (l *Logger) LogNearestBatch(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "nearest batch failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "nearest batch completed",
			"count", count,
		)
	}
}

func pointAttr(p *geom.Point) string {
	if p == nil {
		return "<nil>"
	}
	return p.String()
}
