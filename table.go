package rhttp

import (
	"log"
	"net/http"

	"github.com/samber/lo"

	"github.com/onsberg/rhttp/internal/urltemplate"
)

// supportedMethods is the fixed set of methods the table keys on. Requests
// with any other method resolve to 405 and registrations for any other
// method are dropped.
var supportedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPatch,
	http.MethodDelete,
}

type route struct {
	pattern  string
	template *urltemplate.Template
	handler  Handler
}

// RouteTable owns, per supported HTTP method, an ordered collection of
// pattern->handler bindings. Registration order is significant: dispatch is
// first-match-in-registration-order, not most-specific-match. Entries are
// never removed; registration is expected to complete before serving begins
// and the table is not synchronized for concurrent mutation.
type RouteTable struct {
	routes   map[string][]route
	reverser *Reverser
	logs     Logger
}

// NewRouteTable creates an empty table with default settings.
func NewRouteTable() *RouteTable {
	return NewRouteTableWith(NewStdLogger(log.Default()), NewReverser())
}

// NewRouteTableWith creates an empty table with a custom logger and reverser.
func NewRouteTableWith(logs Logger, reverser *Reverser) *RouteTable {
	routes := make(map[string][]route, len(supportedMethods))
	for _, method := range supportedMethods {
		routes[method] = nil
	}

	return &RouteTable{routes: routes, reverser: reverser, logs: logs}
}

// Register binds pattern to handler under the given method, optionally naming
// the route for [RouteTable.Reverse]. An empty pattern fails with
// [ErrInvalidPattern]; that is the only validation, pattern syntax is not
// checked beyond it. Re-registering a pattern replaces its handler in place,
// keeping the original position in the match order. A method outside the
// supported set drops the registration without error; the drop is reported
// through the [Logger] so it does not pass unnoticed.
func (t *RouteTable) Register(method, pattern string, handler Handler, name ...string) error {
	if pattern == "" {
		return ErrInvalidPattern
	}

	if !lo.Contains(supportedMethods, method) {
		t.logs.LogDroppedRegistration(method, pattern)
		return nil
	}

	template := urltemplate.Parse(pattern)
	if len(name) > 0 {
		if err := t.reverser.NamedTemplate(name[0], template); err != nil {
			return err
		}
	}

	existing := t.routes[method]
	for i := range existing {
		if existing[i].pattern == pattern {
			existing[i].handler = handler
			return nil
		}
	}

	t.routes[method] = append(existing, route{pattern: pattern, template: template, handler: handler})

	return nil
}

// Get registers a GET route.
func (t *RouteTable) Get(pattern string, handler HandlerFunc, name ...string) error {
	return t.Register(http.MethodGet, pattern, handler, name...)
}

// Post registers a POST route.
func (t *RouteTable) Post(pattern string, handler HandlerFunc, name ...string) error {
	return t.Register(http.MethodPost, pattern, handler, name...)
}

// Patch registers a PATCH route.
func (t *RouteTable) Patch(pattern string, handler HandlerFunc, name ...string) error {
	return t.Register(http.MethodPatch, pattern, handler, name...)
}

// Delete registers a DELETE route.
func (t *RouteTable) Delete(pattern string, handler HandlerFunc, name ...string) error {
	return t.Register(http.MethodDelete, pattern, handler, name...)
}

// Reverse returns the url based on the route name and parameter values.
func (t *RouteTable) Reverse(name string, vals ...string) (string, error) {
	return t.reverser.Reverse(name, vals...)
}

// lookup returns the method's routes in registration order. The second return
// distinguishes a supported method without routes from an unsupported method.
func (t *RouteTable) lookup(method string) ([]route, bool) {
	routes, ok := t.routes[method]
	return routes, ok
}
