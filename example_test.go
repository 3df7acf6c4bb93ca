package rhttp_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/onsberg/rhttp"
)

func Example() {
	table := rhttp.NewRouteTable()
	_ = table.Get("/test/:id", func(_ context.Context, c *rhttp.Context) (*rhttp.Response, error) {
		return rhttp.Text(http.StatusOK, "test, "+c.Params.Pathname["id"]+"!"), nil
	})

	d := rhttp.NewDispatcher(table)
	resp := d.Dispatch(context.Background(), httptest.NewRequest(http.MethodGet, "/test/123", nil))

	body, _ := io.ReadAll(resp.Body)
	fmt.Println(resp.Status, string(body))
	// Output: 200 test, 123!
}

func ExampleDispatcher_Dispatch_statusPolicy() {
	table := rhttp.NewRouteTable()
	d := rhttp.NewDispatcher(table)

	unsupported := d.Dispatch(context.Background(), httptest.NewRequest("TEST", "/anything", nil))
	unmatched := d.Dispatch(context.Background(), httptest.NewRequest(http.MethodGet, "/anything", nil))

	fmt.Println(unsupported.Status, unmatched.Status)
	// Output: 405 404
}

func ExampleRouteTable_Reverse() {
	table := rhttp.NewRouteTable()
	_ = table.Get("/items/:id", func(context.Context, *rhttp.Context) (*rhttp.Response, error) {
		return rhttp.NewResponse(http.StatusOK), nil
	}, "get-item")

	loc, _ := table.Reverse("get-item", "42")
	fmt.Println(loc)
	// Output: /items/42
}

func ExampleToStd() {
	table := rhttp.NewRouteTable()
	_ = table.Get("/hello/:name", func(_ context.Context, c *rhttp.Context) (*rhttp.Response, error) {
		return rhttp.Text(http.StatusOK, "hello "+c.Params.Pathname["name"]), nil
	})

	handler := rhttp.ToStd(rhttp.NewDispatcher(table))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello/world", nil))

	fmt.Println(rec.Body.String())
	// Output: hello world
}
