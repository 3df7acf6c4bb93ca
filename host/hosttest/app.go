// Package hosttest provides test helpers for host applications.
//
// It constructs the identical DI graph as [host.NewApp] but uses
// [fxtest.App] which fails the test immediately on DI errors.
//
// Example:
//
//	hosttest.SetBaseEnv(t, 18081)
//	app := hosttest.New[TestEnv](t, routing)
//	app.RequireStart()
//	t.Cleanup(app.RequireStop)
package hosttest

import (
	"testing"

	"github.com/onsberg/rhttp/host"
	"go.uber.org/fx/fxtest"
)

// App embeds *fxtest.App for testing host applications.
type App struct {
	*fxtest.App
}

// New creates a test app with the same DI graph as [host.NewApp].
func New[E host.Environment](t testing.TB, routing any, opts ...host.Option) *App {
	return &App{App: fxtest.New(t, host.FxOptions[E](routing, opts...)...)}
}
