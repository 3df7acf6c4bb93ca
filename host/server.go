package host

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onsberg/rhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// ServerConfig holds optional configuration for the HTTP server.
type ServerConfig struct {
	HealthHandler func(http.ResponseWriter, *http.Request)
}

// ServerParams holds the dependencies for creating an HTTP server.
type ServerParams struct {
	fx.In

	Env        Environment
	Dispatcher *rhttp.Dispatcher
	Logger     *zap.Logger
	TracerProv trace.TracerProvider
	Propagator propagation.TextMapPropagator
}

// NewServer creates an HTTP server around the dispatcher with logging,
// tracing, an access log and the health endpoint configured.
func NewServer(params ServerParams, cfg ServerConfig) (*http.Server, error) {
	core := rhttp.ToStd(params.Dispatcher)

	// The health check endpoint is resolved before the dispatcher so LB
	// probes never hit the route table. Tracing skips it to avoid noisy
	// orphan traces.
	healthPath := params.Env.healthPath()
	healthHandler := cfg.HealthHandler
	if healthHandler == nil {
		healthHandler = defaultHealthHandler
	}

	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == healthPath {
			healthHandler(w, r)
			return
		}

		core.ServeHTTP(w, r)
	})

	handler = withRequestDep(&requestDep{logger: params.Logger})(handler)

	accessLog, err := newAccessLog(params.Logger, params.Env.accessLogStatus())
	if err != nil {
		return nil, err
	}
	handler = accessLog(handler)

	handler = withTracing(params.TracerProv, params.Propagator, params.Env.serviceName(), healthPath)(handler)

	if params.Env.enableH2C() {
		// cleartext HTTP/2; TLS termination stays with the outer proxy
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	tc := TimeoutConfig{RequestTimeout: params.Env.requestTimeout()}
	readHeaderTimeout, readTimeout, writeTimeout, idleTimeout := tc.ServerTimeouts()

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", params.Env.port()),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}, nil
}

// NewRouteTable creates the route table the app registers routes on, with
// the static root mounted when RH_STATIC_DIR is configured.
func NewRouteTable(env Environment, logs rhttp.Logger) (*rhttp.RouteTable, error) {
	table := rhttp.NewRouteTableWith(logs, rhttp.NewReverser())

	if dir := env.staticDir(); dir != "" {
		if err := table.RegisterStaticRoot(env.staticMount(), dir); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// NewDispatcher creates the dispatcher serving the app's route table.
func NewDispatcher(table *rhttp.RouteTable, logs rhttp.Logger) *rhttp.Dispatcher {
	return rhttp.NewDispatcherWith(table, logs)
}

// startServerHook registers lifecycle hooks for the HTTP server.
func startServerHook(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting server", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return server.Shutdown(ctx)
		},
	})
}

func defaultHealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
