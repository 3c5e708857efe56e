package logger

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type contextKey string

const loggerKey contextKey = "logger"

// echoLoggerKey is the echo-context key for the request-scoped logger.
// WithEcho and FromEcho are the only places that touch it.
const echoLoggerKey = "logger"

// WithContext returns a context carrying the given logger
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger carried by ctx, or the global logger
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return GetLogger()
}

// WithEcho attaches a request-scoped logger to the echo context
func WithEcho(c echo.Context, l *zap.Logger) {
	c.Set(echoLoggerKey, l)
}

// FromEcho returns the request-scoped logger attached by WithEcho, or the
// global logger when none was attached (direct handler calls in tests).
func FromEcho(c echo.Context) *zap.Logger {
	if l, ok := c.Get(echoLoggerKey).(*zap.Logger); ok {
		return l
	}
	return GetLogger()
}
