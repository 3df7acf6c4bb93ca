package host

import "time"

// The server is frequently deployed behind a reverse proxy or load balancer,
// so a single request-time budget (RH_REQUEST_TIMEOUT) drives all four
// http.Server timeouts rather than each being configured separately. The
// header read gets a short cap because headers arrive quickly from any sane
// peer; everything else shares the budget.

// DefaultHeaderTimeout caps how long the server waits for request headers.
const DefaultHeaderTimeout = 5 * time.Second

// TimeoutConfig holds timeout configuration for the HTTP server.
type TimeoutConfig struct {
	// RequestTimeout is the overall per-request budget the server timeouts
	// derive from.
	RequestTimeout time.Duration
}

// ServerTimeouts returns the recommended http.Server timeout values based on
// the request budget.
func (tc TimeoutConfig) ServerTimeouts() (readHeaderTimeout, readTimeout, writeTimeout, idleTimeout time.Duration) {
	budget := tc.RequestTimeout
	if budget <= 0 {
		budget = 30 * time.Second
	}

	readHeaderTimeout = min(budget, DefaultHeaderTimeout)
	readTimeout = budget
	writeTimeout = budget
	idleTimeout = budget

	return
}
