package rhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// Params holds the named captures bound while matching a route pattern.
// Pathname holds ":name" segment and trailing ":name*" wildcard captures,
// Search holds query-string captures. A map is nil when its part of the
// pattern bound nothing; captures with an empty value are omitted.
type Params struct {
	Pathname map[string]string
	Search   map[string]string
}

// Context is the per-dispatch request context handed to handlers. The core
// only reads the request; it stays owned by the caller.
type Context struct {
	// Request is the raw incoming request.
	Request *http.Request

	// Params holds the captures of the matched pattern.
	Params Params

	// Body is the request body parsed as JSON, best-effort. On an absent,
	// empty or malformed body it is the Null result and BodyErr says why.
	Body gjson.Result

	// BodyErr classifies why Body is Null: nil, [ErrBodyAbsent] or
	// [ErrBodyMalformed]. Handlers happy with the lenient contract can
	// ignore it.
	BodyErr error
}

// Handler is the capability invoked when a route matches. Returning a
// *Response ends the dispatch with that response verbatim. Returning an error
// is a handler failure: the dispatcher degrades it to a 500 without leaking
// the error to the client.
type Handler interface {
	ServeRoute(ctx context.Context, c *Context) (*Response, error)
}

// HandlerFunc allows casting a function to an implementation of [Handler].
type HandlerFunc func(ctx context.Context, c *Context) (*Response, error)

// ServeRoute implements the [Handler] interface.
func (f HandlerFunc) ServeRoute(ctx context.Context, c *Context) (*Response, error) {
	return f(ctx, c)
}

// Response is the value a dispatch resolves to: a status code, optional
// headers and an optional body. A Body implementing io.ReadCloser is closed
// by [ToStd] after writing, so file-backed bodies stream lazily and still get
// released on every exit path.
type Response struct {
	Status int
	Header http.Header
	Body   io.Reader
}

// NewResponse inits a bodyless response with the given status code.
func NewResponse(status int) *Response {
	return &Response{Status: status, Header: http.Header{}}
}

// Text inits a plain-text response.
func Text(status int, body string) *Response {
	resp := NewResponse(status)
	resp.Header.Set("Content-Type", "text/plain; charset=utf-8")
	resp.Body = strings.NewReader(body)
	return resp
}

// JSON inits an application/json response from the marshalling of v.
func JSON(status int, v any) (*Response, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal response body")
	}

	resp := NewResponse(status)
	resp.Header.Set("Content-Type", "application/json")
	resp.Body = bytes.NewReader(buf)
	return resp, nil
}

// SetHeader sets a header value and returns the response for chaining.
func (r *Response) SetHeader(key, value string) *Response {
	if r.Header == nil {
		r.Header = http.Header{}
	}
	r.Header.Set(key, value)
	return r
}
