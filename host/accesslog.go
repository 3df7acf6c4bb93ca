package host

import (
	"net/http"
	"time"

	intervals "github.com/MawKKe/integer-interval-expressions-go"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// newAccessLog returns a handler wrapper that logs finished requests whose
// status code matches the given interval expression (e.g. "400-599"). Codes
// outside the set stay silent so healthy traffic does not flood the log.
func newAccessLog(logs *zap.Logger, expression string) (func(http.Handler) http.Handler, error) {
	expr, err := intervals.ParseExpression(expression)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse status code expression %q", expression)
	}

	logs = logs.Named("access")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if !expr.Matches(rec.status) {
				return
			}

			logs.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)))
		})
	}, nil
}

// statusRecorder captures the written status code for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
