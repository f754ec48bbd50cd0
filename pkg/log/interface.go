// Package log provides a structured logging interface for MatGo's
// linear-algebra operations.
//
// This package defines a minimal, slog-compatible logging interface that
// allows for flexible implementation switching while providing
// numerics-specific structured logging. The interface integrates with Go's
// standard log/slog package and with zerolog through the backend in
// zerolog.go.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - standard attribute keys for matrix shapes, pivots and timings
//   - context-aware logging with field chaining
//   - test-friendly with configurable output destinations
//
// Example usage:
//
//	logger := log.NewZerologLogger(os.Stderr, log.LevelInfo).With(
//	    log.ComponentKey, "dense",
//	)
//	logger.Info("solve finished",
//	    log.OpKey, "dense.Solve",
//	    log.RowsKey, 3,
//	    log.ColsKey, 3,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's
// log/slog. It is implementation-agnostic, enabling switching between
// logging backends while keeping a consistent API. Contextual loggers with
// pre-populated fields are created through With.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields,
	// given as alternating key-value pairs.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If a field value is an error, implementations may extract stack
	// trace information from it.
	Error(msg string, fields ...any)

	// With returns a new Logger that includes the given fields in every
	// subsequent log message.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to avoid building expensive attributes that would be dropped.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // detailed diagnostic information
	LevelInfo  Level = 0  // general operational information
	LevelWarn  Level = 4  // warning conditions
	LevelError Level = 8  // error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
