package hosttest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/onsberg/rhttp"
)

// Serve dispatches req against the table and returns the recorded response.
// It handles the boilerplate of constructing a dispatcher with a test logger
// and bridging it to a standard handler, so handler tests need neither a
// listener nor the DI graph.
func Serve(t testing.TB, table *rhttp.RouteTable, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	handler := rhttp.ToStd(rhttp.NewDispatcherWith(table, rhttp.NewTestLogger(t)))
	handler.ServeHTTP(rec, req)

	return rec
}
