// Package rhttp provides a minimal HTTP routing and dispatch engine.
//
// # Overview
//
// rhttp maps an incoming request's method and path to a registered handler,
// extracts path and query parameters, parses a JSON body, and can serve
// static files from a directory. It is a dispatch layer that sits in front of
// a host HTTP server primitive: the host calls [Dispatcher.Dispatch] (or
// serves the [ToStd] adapter) with a request and receives a response; rhttp
// never opens a listener itself.
//
// A minimal example:
//
//	table := rhttp.NewRouteTable()
//	table.Get("/items/:id", func(ctx context.Context, c *rhttp.Context) (*rhttp.Response, error) {
//	    return rhttp.Text(200, "item "+c.Params.Pathname["id"]), nil
//	})
//
//	http.ListenAndServe(":8080", rhttp.ToStd(rhttp.NewDispatcher(table)))
//
// # Route Table
//
// [RouteTable] owns, per HTTP method (GET, POST, PATCH and DELETE), an
// ordered collection of pattern->handler bindings. Order matters: dispatch
// tries patterns in registration order and the first match wins, there is no
// most-specific-match resolution. Re-registering a pattern replaces its
// handler in place. Registration validates only that the pattern is
// non-empty; an empty pattern fails with [ErrInvalidPattern], the single
// error the package ever returns from its API.
//
// # Patterns
//
// A pattern is a URL template. A ":name" segment captures one non-empty path
// segment, a trailing ":name*" captures the remainder of the path, and query
// pairs like "q=:term" capture query values:
//
//	/items/:id            ->  c.Params.Pathname["id"]
//	/static/:path*        ->  c.Params.Pathname["path"] binds "js/app.js"
//	/search?q=:term       ->  c.Params.Search["term"]
//
// Captures that bind an empty value are omitted from the params maps.
//
// # Handlers and Dispatch
//
// Handlers implement [Handler] (or are cast from a function with
// [HandlerFunc]) and receive a [Context] carrying the raw request, the bound
// params and the body parsed as JSON. They return a [Response] value; the
// dispatcher returns it to the host verbatim. Returning an error is a
// handler failure: the client sees a bodyless 500 and the error itself only
// reaches the configured [Logger].
//
// Dispatch never fails. The status-code policy is:
//
//   - method outside the supported set: 405
//   - supported method, no pattern matches: 404
//   - pattern matches, handler fails: 500, and later patterns for the same
//     method are still tried; a later successful match ends the dispatch
//     with its response
//   - pattern matches, handler returns a response: that response, verbatim
//
// # Request Bodies
//
// The body is read once per dispatch and parsed as JSON best-effort via
// [github.com/tidwall/gjson]. Any failure yields the Null result, never an
// error to the client; handlers that need the distinction can inspect
// [Context.BodyErr] for [ErrBodyAbsent] or [ErrBodyMalformed].
//
// # Static Files
//
// [RouteTable.RegisterStaticRoot] mounts a GET wildcard route that serves
// files from a directory. The wildcard capture is canonicalized and verified
// to stay inside the directory, so "../" sequences cannot escape it. Any
// failure to open the target collapses to a 404 with body "Not Found".
// Served files stream lazily and are closed by [ToStd] after writing.
//
// # Concurrency
//
// Registration is expected to complete before serving begins; the table is
// not synchronized. After that, [Dispatcher.Dispatch] is safe to call
// concurrently because no call mutates shared state. Cancellation of
// in-flight work is the host's responsibility via the request context.
//
// # Host Integration
//
// [ToStd] bridges a dispatcher to a standard http.Handler. The host/
// subpackage builds a complete environment-configured server around it, with
// structured logging, tracing and lifecycle management.
package rhttp
