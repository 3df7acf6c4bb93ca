package rhttp_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/onsberg/rhttp"
	"github.com/stretchr/testify/require"
)

func okHandler(body string) rhttp.HandlerFunc {
	return func(context.Context, *rhttp.Context) (*rhttp.Response, error) {
		return rhttp.Text(http.StatusOK, body), nil
	}
}

func dispatchStatus(t *testing.T, table *rhttp.RouteTable, method, target string) (*rhttp.Response, string) {
	t.Helper()

	d := rhttp.NewDispatcherWith(table, rhttp.NewTestLogger(t))
	resp := d.Dispatch(context.Background(), httptest.NewRequest(method, target, nil))

	body := ""
	if resp.Body != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		body = string(raw)
	}

	return resp, body
}

func TestRegisterEmptyPattern(t *testing.T) {
	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())

	for _, method := range []string{
		http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, "TEST",
	} {
		err := table.Register(method, "", okHandler("x"))
		require.ErrorIs(t, err, rhttp.ErrInvalidPattern, "method %s", method)
	}
}

func TestRegisterUnsupportedMethodDropped(t *testing.T) {
	logs := rhttp.NewTestLogger(t)
	table := rhttp.NewRouteTableWith(logs, rhttp.NewReverser())

	require.NoError(t, table.Register("PUT", "/test", okHandler("x")))
	require.Equal(t, int64(1), logs.NumLogDroppedRegistration)

	// the dropped registration left no entry behind
	resp, _ := dispatchStatus(t, table, "PUT", "/test")
	require.Equal(t, http.StatusMethodNotAllowed, resp.Status)
}

func TestRegisterReplacesInPlace(t *testing.T) {
	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())

	require.NoError(t, table.Get("/test/:id", okHandler("first")))
	require.NoError(t, table.Get("/test/:id", okHandler("second")))
	require.NoError(t, table.Get("/test/other", okHandler("other")))

	resp, body := dispatchStatus(t, table, http.MethodGet, "/test/1")
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, "second", body)
}

func TestFirstMatchInRegistrationOrderWins(t *testing.T) {
	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())

	require.NoError(t, table.Get("/test/:id", okHandler("param")))
	require.NoError(t, table.Get("/test/123", okHandler("literal")))

	_, body := dispatchStatus(t, table, http.MethodGet, "/test/123")
	require.Equal(t, "param", body)
}

func TestMethodSugar(t *testing.T) {
	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())

	require.NoError(t, table.Get("/r", okHandler("get")))
	require.NoError(t, table.Post("/r", okHandler("post")))
	require.NoError(t, table.Patch("/r", okHandler("patch")))
	require.NoError(t, table.Delete("/r", okHandler("delete")))

	for method, want := range map[string]string{
		http.MethodGet:    "get",
		http.MethodPost:   "post",
		http.MethodPatch:  "patch",
		http.MethodDelete: "delete",
	} {
		_, body := dispatchStatus(t, table, method, "/r")
		require.Equal(t, want, body)
	}
}

func TestReverseNamedRoute(t *testing.T) {
	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())

	require.NoError(t, table.Get("/test/:id", okHandler("x"), "get-test"))

	loc, err := table.Reverse("get-test", "123")
	require.NoError(t, err)
	require.Equal(t, "/test/123", loc)

	_, err = table.Reverse("nope")
	require.Error(t, err)
}

func TestReverseDuplicateName(t *testing.T) {
	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())

	require.NoError(t, table.Get("/a", okHandler("x"), "dup"))
	require.Error(t, table.Get("/b", okHandler("x"), "dup"))
}
