package host

import (
	"net/http"

	"github.com/carlmjohnson/requests"
	"github.com/onsberg/rhttp"
)

// Runtime provides access to app-scoped dependencies.
// Inject this into handler constructors via fx instead of pulling from context.
//
// Example:
//
//	type Handlers struct{ rt *host.Runtime[Env] }
//
//	func NewHandlers(rt *host.Runtime[Env]) *Handlers {
//	    return &Handlers{rt: rt}
//	}
//
//	func (h *Handlers) GetItem(ctx context.Context, c *rhttp.Context) (*rhttp.Response, error) {
//	    env := h.rt.Env()
//	    url, _ := h.rt.Reverse("get-item", id)
//	    // ...
//	}
type Runtime[E Environment] struct {
	env       E
	table     *rhttp.RouteTable
	transport http.RoundTripper
}

// NewRuntime creates a new Runtime with the given dependencies.
func NewRuntime[E Environment](env E, table *rhttp.RouteTable, transport http.RoundTripper) *Runtime[E] {
	return &Runtime[E]{env: env, table: table, transport: transport}
}

// Env returns the environment configuration.
func (r *Runtime[E]) Env() E {
	return r.env
}

// Reverse returns the URL for a named route with the given parameters.
// The route must have been registered with a name.
func (r *Runtime[E]) Reverse(name string, vals ...string) (string, error) {
	return r.table.Reverse(name, vals...)
}

// NewRequest returns a fresh [requests.Builder] with the instrumented
// transport pre-wired, for outbound calls from handlers.
func (r *Runtime[E]) NewRequest() *requests.Builder {
	return newRequestBuilder(r.transport)
}
