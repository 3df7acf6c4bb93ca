package hosttest

import (
	"strconv"
	"testing"
)

// Env provides a chainable builder for setting [host.BaseEnvironment] env
// vars via t.Setenv. Create one with [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets all [host.BaseEnvironment] env vars to sensible test
// defaults. Port is required because each test must use a unique port to
// avoid collisions.
//
// Defaults:
//   - RH_SERVICE_NAME: "test"
//   - RH_OTEL_EXPORTER: "none"
//
// Use the returned [Env] to override individual values:
//
//	hosttest.SetBaseEnv(t, 18085).ServiceName("itemsvc").StaticDir("testdata")
func SetBaseEnv(t testing.TB, port int) *Env {
	t.Helper()
	t.Setenv("RH_PORT", strconv.Itoa(port))
	t.Setenv("RH_SERVICE_NAME", "test")
	t.Setenv("RH_OTEL_EXPORTER", "none")
	return &Env{t: t}
}

// ServiceName overrides RH_SERVICE_NAME.
func (e *Env) ServiceName(name string) *Env {
	e.t.Helper()
	e.t.Setenv("RH_SERVICE_NAME", name)
	return e
}

// HealthPath overrides RH_HEALTH_PATH.
func (e *Env) HealthPath(path string) *Env {
	e.t.Helper()
	e.t.Setenv("RH_HEALTH_PATH", path)
	return e
}

// LogLevel overrides RH_LOG_LEVEL.
func (e *Env) LogLevel(level string) *Env {
	e.t.Helper()
	e.t.Setenv("RH_LOG_LEVEL", level)
	return e
}

// StaticDir overrides RH_STATIC_DIR.
func (e *Env) StaticDir(dir string) *Env {
	e.t.Helper()
	e.t.Setenv("RH_STATIC_DIR", dir)
	return e
}

// AccessLogStatus overrides RH_ACCESS_LOG_STATUS.
func (e *Env) AccessLogStatus(expr string) *Env {
	e.t.Helper()
	e.t.Setenv("RH_ACCESS_LOG_STATUS", expr)
	return e
}
