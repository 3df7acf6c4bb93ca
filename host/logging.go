package host

import (
	"github.com/onsberg/rhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment.
// Uses JSON encoding suitable for log aggregation.
// RH_LOG_LEVEL controls the level (debug, info, warn, error).
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogHandlerFailure(err *rhttp.HandlerError) {
	l.Logger.Error("handler failed",
		zap.String("method", err.Method()),
		zap.String("pattern", err.Pattern()),
		zap.Error(err))
}

func (l zapLogger) LogDroppedRegistration(method, pattern string) {
	l.Logger.Warn("dropped registration for unsupported method",
		zap.String("method", method),
		zap.String("pattern", pattern))
}

func (l zapLogger) LogResponseWriteError(err error) {
	l.Logger.Error("error while writing response", zap.Error(err))
}

// NewCoreLogger adapts a zap logger to the routing core's logging seam.
func NewCoreLogger(l *zap.Logger) rhttp.Logger {
	return zapLogger{l.Named("rhttp")}
}
