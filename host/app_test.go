package host_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/onsberg/rhttp"
	"github.com/onsberg/rhttp/host"
	"github.com/onsberg/rhttp/host/hosttest"
	"github.com/stretchr/testify/require"
)

func waitForHealthy(t *testing.T, base string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for {
		err := requests.URL(base + "/healthz").Fetch(ctx)
		if err == nil {
			return
		}

		select {
		case <-ctx.Done():
			t.Fatalf("server never became healthy: %v", err)
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestAppServesRoutes(t *testing.T) {
	hosttest.SetBaseEnv(t, 18086)

	app := hosttest.New[host.BaseEnvironment](t, func(table *rhttp.RouteTable) error {
		return table.Get("/ping/:who", func(_ context.Context, c *rhttp.Context) (*rhttp.Response, error) {
			return rhttp.Text(http.StatusOK, "pong "+c.Params.Pathname["who"]), nil
		}, "ping")
	})
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	base := "http://localhost:18086"
	waitForHealthy(t, base)

	var body string
	require.NoError(t, requests.URL(base+"/ping/there").ToString(&body).Fetch(context.Background()))
	require.Equal(t, "pong there", body)

	err := requests.URL(base + "/nope").Fetch(context.Background())
	require.True(t, requests.HasStatusErr(err, http.StatusNotFound))
}

func TestAppRuntimeReverse(t *testing.T) {
	hosttest.SetBaseEnv(t, 18087)

	var rt *host.Runtime[host.BaseEnvironment]
	app := hosttest.New[host.BaseEnvironment](t, func(table *rhttp.RouteTable, runtime *host.Runtime[host.BaseEnvironment]) error {
		rt = runtime
		return table.Get("/items/:id", func(context.Context, *rhttp.Context) (*rhttp.Response, error) {
			return rhttp.NewResponse(http.StatusOK), nil
		}, "get-item")
	})
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	require.Equal(t, "test", rt.Env().ServiceName)

	loc, err := rt.Reverse("get-item", "42")
	require.NoError(t, err)
	require.Equal(t, "/items/42", loc)
}
