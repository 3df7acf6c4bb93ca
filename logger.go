package rhttp

import (
	"log"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about important states.
type Logger interface {
	LogHandlerFailure(err *HandlerError)
	LogDroppedRegistration(method, pattern string)
	LogResponseWriteError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogHandlerFailure(err *HandlerError) {
	l.Logger.Printf("rhttp: handler failed: %s", err)
}

func (l stdLogger) LogDroppedRegistration(method, pattern string) {
	l.Logger.Printf("rhttp: dropped registration for unsupported method: %s %s", method, pattern)
}

func (l stdLogger) LogResponseWriteError(err error) {
	l.Logger.Printf("rhttp: error while writing response: %s", err)
}

func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumLogHandlerFailure      int64
	NumLogDroppedRegistration int64
	NumLogResponseWriteError  int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogHandlerFailure(err *HandlerError) {
	atomic.AddInt64(&l.NumLogHandlerFailure, 1)
	l.tb.Logf("rhttp: handler failed: %s", err)
}

func (l *TestLogger) LogDroppedRegistration(method, pattern string) {
	atomic.AddInt64(&l.NumLogDroppedRegistration, 1)
	l.tb.Logf("rhttp: dropped registration for unsupported method: %s %s", method, pattern)
}

func (l *TestLogger) LogResponseWriteError(err error) {
	atomic.AddInt64(&l.NumLogResponseWriteError, 1)
	l.tb.Logf("rhttp: error while writing response: %s", err)
}

var _ Logger = &TestLogger{}
