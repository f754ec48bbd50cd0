package log

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	matgoerrors "github.com/matgo-dev/matgo/pkg/errors"
)

// zerologLogger is a Logger backed by zerolog.
type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger returns a Logger that writes structured JSON records to
// w using zerolog, filtered at the given minimum level.
func NewZerologLogger(w io.Writer, level Level) Logger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

func toZerologLevel(l Level) zerolog.Level {
	switch {
	case l <= LevelDebug:
		return zerolog.DebugLevel
	case l <= LevelInfo:
		return zerolog.InfoLevel
	case l <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Debug implements Logger.Debug.
func (z *zerologLogger) Debug(msg string, fields ...any) {
	z.emit(z.zl.Debug(), msg, fields)
}

// Info implements Logger.Info.
func (z *zerologLogger) Info(msg string, fields ...any) {
	z.emit(z.zl.Info(), msg, fields)
}

// Warn implements Logger.Warn.
func (z *zerologLogger) Warn(msg string, fields ...any) {
	z.emit(z.zl.Warn(), msg, fields)
}

// Error implements Logger.Error.
func (z *zerologLogger) Error(msg string, fields ...any) {
	z.emit(z.zl.Error(), msg, fields)
}

// With implements Logger.With.
func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		ctx = ctx.Interface(fieldKey(fields[i]), fields[i+1])
	}
	return &zerologLogger{zl: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	minLevel := z.zl.GetLevel()
	return minLevel != zerolog.Disabled && toZerologLevel(level) >= minLevel
}

func (z *zerologLogger) emit(ev *zerolog.Event, msg string, fields []any) {
	for i := 0; i < len(fields); i += 2 {
		key := fieldKey(fields[i])
		if i+1 >= len(fields) {
			ev.Str(key, "!MISSING")
			break
		}
		switch v := fields[i+1].(type) {
		case zerolog.LogObjectMarshaler:
			ev.Object(key, v)
		case error:
			ev.AnErr(key, v)
		default:
			ev.Interface(key, v)
		}
	}
	ev.Msg(msg)
}

func fieldKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// InstallWarningBridge routes warnings raised through pkg/errors into the
// given zerolog logger. Warning types that implement LogObjectMarshaler
// are emitted as structured objects.
func InstallWarningBridge(zl zerolog.Logger) {
	matgoerrors.SetZerologWarnFunc(func(w error) {
		ev := zl.Warn()
		if obj, ok := w.(zerolog.LogObjectMarshaler); ok {
			ev.Object("warning", obj)
		} else {
			ev.AnErr("warning", w)
		}
		ev.Msg(w.Error())
	})
}
