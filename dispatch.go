package rhttp

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// Dispatcher resolves one incoming request to exactly one response by
// consulting a [RouteTable]. It is stateless between calls and safe for
// concurrent use: all shared state lives in the immutable-after-setup table.
type Dispatcher struct {
	table *RouteTable
	logs  Logger
}

// NewDispatcher creates a dispatcher with default settings.
func NewDispatcher(table *RouteTable) *Dispatcher {
	return NewDispatcherWith(table, NewStdLogger(log.Default()))
}

// NewDispatcherWith creates a dispatcher with a custom logger.
func NewDispatcherWith(table *RouteTable, logs Logger) *Dispatcher {
	return &Dispatcher{table: table, logs: logs}
}

// Dispatch resolves r to a response. It never fails: an unsupported method
// yields a bodyless 405, a supported method without a matching pattern a
// bodyless 404, and a matched handler that fails a bodyless 500. The first
// matching handler that completes with a response ends the dispatch with that
// response verbatim. A failing matched handler does not end the dispatch:
// later patterns for the same method are still tried, and the 500 only
// governs when none of them completes with a response.
func (d *Dispatcher) Dispatch(ctx context.Context, r *http.Request) *Response {
	routes, supported := d.table.lookup(r.Method)
	if !supported {
		return NewResponse(http.StatusMethodNotAllowed)
	}

	status := http.StatusNotFound
	body := &bodyOnce{request: r}

	for _, rt := range routes {
		caps, ok := rt.template.Match(r.URL)
		if !ok {
			continue
		}

		c := &Context{
			Request: r,
			Params:  Params{Pathname: caps.Pathname, Search: caps.Search},
		}
		c.Body, c.BodyErr = body.parse()

		resp, err := d.invoke(ctx, rt, c)
		if err != nil {
			d.logs.LogHandlerFailure(newHandlerError(r.Method, rt.pattern, err))
			status = http.StatusInternalServerError
			continue
		}

		if resp == nil {
			// tolerated, the way a host response constructor would
			// tolerate an empty response value
			resp = NewResponse(http.StatusOK)
		}

		return resp
	}

	return NewResponse(status)
}

// invoke calls the handler, turning a panic into a handler failure so one
// misbehaving handler cannot take down the whole dispatch.
func (d *Dispatcher) invoke(ctx context.Context, rt route, c *Context) (resp *Response, err error) {
	defer func() {
		if v := recover(); v != nil {
			resp, err = nil, errors.Newf("handler panic: %v", v)
		}
	}()

	return rt.handler.ServeRoute(ctx, c)
}

// bodyOnce reads and parses the request body at most once per dispatch, so a
// failing first handler does not leave later matches with a drained stream.
type bodyOnce struct {
	request *http.Request
	done    bool
	result  gjson.Result
	err     error
}

func (b *bodyOnce) parse() (gjson.Result, error) {
	if b.done {
		return b.result, b.err
	}
	b.done = true

	if b.request.Body == nil {
		b.err = ErrBodyAbsent
		return b.result, b.err
	}

	raw, err := io.ReadAll(b.request.Body)
	if err != nil || len(raw) == 0 {
		b.err = ErrBodyAbsent
		return b.result, b.err
	}

	if text := string(raw); gjson.Valid(text) {
		b.result = gjson.Parse(text)
	} else {
		b.err = ErrBodyMalformed
	}

	return b.result, b.err
}
