package rhttp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carlmjohnson/requests"
	"github.com/onsberg/rhttp"
	"github.com/stretchr/testify/require"
)

type closeTracker struct {
	*strings.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestToStdWritesResponse(t *testing.T) {
	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())
	require.NoError(t, table.Get("/greet/:name", func(_ context.Context, c *rhttp.Context) (*rhttp.Response, error) {
		resp := rhttp.Text(http.StatusCreated, "hello "+c.Params.Pathname["name"])
		return resp.SetHeader("Is-Bar", "rab"), nil
	}))

	handler := rhttp.ToStd(rhttp.NewDispatcherWith(table, rhttp.NewTestLogger(t)))

	rec, req := httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/greet/foo", nil)
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "rab", rec.Header().Get("Is-Bar"))
	require.Equal(t, "hello foo", rec.Body.String())
}

func TestToStdClosesBody(t *testing.T) {
	body := &closeTracker{Reader: strings.NewReader("streamed")}

	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())
	require.NoError(t, table.Get("/stream", func(context.Context, *rhttp.Context) (*rhttp.Response, error) {
		resp := rhttp.NewResponse(http.StatusOK)
		resp.Body = body
		return resp, nil
	}))

	handler := rhttp.ToStd(rhttp.NewDispatcherWith(table, rhttp.NewTestLogger(t)))

	rec, req := httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stream", nil)
	handler.ServeHTTP(rec, req)

	require.Equal(t, "streamed", rec.Body.String())
	require.True(t, body.closed)
}

func TestToStdEndToEnd(t *testing.T) {
	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())
	require.NoError(t, table.Post("/echo", func(_ context.Context, c *rhttp.Context) (*rhttp.Response, error) {
		return rhttp.JSON(http.StatusOK, map[string]string{"echo": c.Body.Get("test").String()})
	}))

	srv := httptest.NewServer(rhttp.ToStd(rhttp.NewDispatcherWith(table, rhttp.NewTestLogger(t))))
	defer srv.Close()

	var out struct {
		Echo string `json:"echo"`
	}
	err := requests.URL(srv.URL + "/echo").
		BodyJSON(map[string]string{"test": "TEST"}).
		ToJSON(&out).
		Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "TEST", out.Echo)
}
