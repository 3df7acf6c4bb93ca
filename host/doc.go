// Package host is the external collaborator the rhttp core stays out of: a
// batteries-included HTTP server around a [rhttp.Dispatcher].
//
// # Overview
//
// host handles the boilerplate of running the routing core as a process:
// environment parsing, structured logging, OpenTelemetry tracing, access
// logging, server timeouts and graceful shutdown. A complete application can
// be created in a single call:
//
//	host.NewApp[Env](func(t *rhttp.RouteTable) {
//	    t.Get("/items/:id", getItem, "get-item")
//	    t.Post("/items", createItem)
//	}).Run()
//
// # Environment Configuration
//
// Define your environment by embedding [BaseEnvironment]:
//
//	type Env struct {
//	    host.BaseEnvironment
//	    UpstreamURL string `env:"UPSTREAM_URL,required"`
//	}
//
// BaseEnvironment provides the following environment variables:
//
//	| Variable             | Required | Default  | Description                                  |
//	|----------------------|----------|----------|----------------------------------------------|
//	| RH_PORT              | Yes      | -        | Port the HTTP server listens on              |
//	| RH_SERVICE_NAME      | Yes      | -        | Service name for logging and tracing         |
//	| RH_HEALTH_PATH       | No       | /healthz | Health check endpoint path                   |
//	| RH_LOG_LEVEL         | No       | info     | Log level (debug, info, warn, error)         |
//	| RH_OTEL_EXPORTER     | No       | stdout   | Trace exporter: "stdout" or "none"           |
//	| RH_STATIC_DIR        | No       | -        | Static file directory; empty disables it     |
//	| RH_STATIC_MOUNT      | No       | /static  | Mount path for the static root               |
//	| RH_ACCESS_LOG_STATUS | No       | 400-599  | Status codes the access log records          |
//	| RH_REQUEST_TIMEOUT   | No       | 30s      | Budget the server timeouts derive from       |
//	| RH_ENABLE_H2C        | No       | false    | Serve cleartext HTTP/2                       |
//
// RH_ACCESS_LOG_STATUS is an integer interval expression: single codes
// ("500,504"), ranges ("400-599") or a mix ("404,500-599").
//
// # Runtime
//
// [Runtime] provides access to app-scoped dependencies and should be injected
// into handler constructors via fx:
//
//	type Handlers struct{ rt *host.Runtime[Env] }
//
//	func NewHandlers(rt *host.Runtime[Env]) *Handlers { return &Handlers{rt: rt} }
//
//	func (h *Handlers) GetItem(ctx context.Context, c *rhttp.Context) (*rhttp.Response, error) {
//	    env := h.rt.Env()                       // typed environment
//	    url, _ := h.rt.Reverse("get-item", id)  // URL generation
//	    // ...
//	}
//
// [Runtime.NewRequest] returns a [github.com/carlmjohnson/requests] builder
// on the instrumented transport for outbound calls; outbound requests become
// child spans of the active trace.
//
// # Context
//
// Handlers receive a standard context.Context. Use the package-level helpers
// to access request-scoped values:
//
//   - [Log] - trace-correlated zap logger
//   - [Span] - current OpenTelemetry span
//   - [WithLogger] - inject a logger for unit tests
//
// # Dependency Injection
//
// host uses [go.uber.org/fx]. Add custom providers with [WithFx]:
//
//	host.WithFx(fx.Provide(NewHandlers))
//
// The routing function passed to [NewApp] can request any provided type; at
// minimum it should accept *rhttp.RouteTable to register routes.
//
// # Testing
//
// The companion [hosttest] package boots the identical DI graph on a test
// port and offers [hosttest.Serve] for handler-level tests without a
// listener.
package host
