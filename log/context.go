package log

import (
	"context"
)

type contextLogKeyType struct{}

var contextLogKey contextLogKeyType

// LogContext returns a copy of ctx that carries the given logger.
func LogContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextLogKey, logger.Clone())
}

// FromContext returns the logger carried by ctx, or the
// default logger if there isn't one.
func FromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(contextLogKey).(Logger); ok {
		return logger
	}
	return Default()
}
