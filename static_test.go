package rhttp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsberg/rhttp"
	"github.com/stretchr/testify/require"
)

func staticTable(t *testing.T, mount string) *rhttp.RouteTable {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "app.js"), []byte("console.log(1)"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))

	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())
	require.NoError(t, table.RegisterStaticRoot(mount, dir))
	return table
}

func TestStaticServesFile(t *testing.T) {
	table := staticTable(t, "/static")

	resp, body := dispatchStatus(t, table, http.MethodGet, "/static/js/app.js")
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, "console.log(1)", body)
	require.Equal(t, "text/javascript", resp.Header.Get("Content-Type"))
}

func TestStaticContentTypes(t *testing.T) {
	table := staticTable(t, "/static")

	resp, _ := dispatchStatus(t, table, http.MethodGet, "/static/index.html")
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
}

func TestStaticMissingFile(t *testing.T) {
	table := staticTable(t, "/static")

	resp, body := dispatchStatus(t, table, http.MethodGet, "/static/nope.js")
	require.Equal(t, http.StatusNotFound, resp.Status)
	require.Equal(t, "Not Found", body)
}

func TestStaticDirectoryIs404(t *testing.T) {
	table := staticTable(t, "/static")

	resp, body := dispatchStatus(t, table, http.MethodGet, "/static/js")
	require.Equal(t, http.StatusNotFound, resp.Status)
	require.Equal(t, "Not Found", body)
}

func TestStaticTraversalBlocked(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("secret"), 0o644))

	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())
	require.NoError(t, table.RegisterStaticRoot("/static", root))

	d := rhttp.NewDispatcherWith(table, rhttp.NewTestLogger(t))
	for _, target := range []string{
		"/static/../secret.txt",
		"/static/%2e%2e/secret.txt",
		"/static/js/../../secret.txt",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := d.Dispatch(context.Background(), req)
		require.Equal(t, http.StatusNotFound, resp.Status, "target %s", target)
	}
}

func TestStaticDefaultArguments(t *testing.T) {
	table := rhttp.NewRouteTableWith(rhttp.NewTestLogger(t), rhttp.NewReverser())
	require.NoError(t, table.RegisterStaticRoot("", ""))

	// mounted at /static, serving the relative "static" directory which
	// does not exist here, so everything under the mount is a 404
	resp, body := dispatchStatus(t, table, http.MethodGet, "/static/app.js")
	require.Equal(t, http.StatusNotFound, resp.Status)
	require.Equal(t, "Not Found", body)
}
