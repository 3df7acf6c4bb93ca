package host

import (
	"time"

	intervals "github.com/MawKKe/integer-interval-expressions-go"
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must
// implement. Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	port() int
	serviceName() string
	healthPath() string
	logLevel() zapcore.Level
	otelExporter() string
	staticDir() string
	staticMount() string
	accessLogStatus() string
	requestTimeout() time.Duration
	enableH2C() bool
}

// BaseEnvironment contains the required host environment variables.
// Embed this in your custom environment struct.
type BaseEnvironment struct {
	Port            int           `env:"RH_PORT,required"`
	ServiceName     string        `env:"RH_SERVICE_NAME,required"`
	HealthPath      string        `env:"RH_HEALTH_PATH" envDefault:"/healthz"`
	LogLevel        zapcore.Level `env:"RH_LOG_LEVEL" envDefault:"info"`
	OtelExporter    string        `env:"RH_OTEL_EXPORTER" envDefault:"stdout"`
	StaticDir       string        `env:"RH_STATIC_DIR"`
	StaticMount     string        `env:"RH_STATIC_MOUNT" envDefault:"/static"`
	AccessLogStatus string        `env:"RH_ACCESS_LOG_STATUS" envDefault:"400-599"`
	RequestTimeout  time.Duration `env:"RH_REQUEST_TIMEOUT" envDefault:"30s"`
	EnableH2C       bool          `env:"RH_ENABLE_H2C" envDefault:"false"`
}

func (e BaseEnvironment) port() int {
	return e.Port
}

func (e BaseEnvironment) serviceName() string {
	return e.ServiceName
}

func (e BaseEnvironment) healthPath() string {
	return e.HealthPath
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) otelExporter() string {
	return e.OtelExporter
}

func (e BaseEnvironment) staticDir() string {
	return e.StaticDir
}

func (e BaseEnvironment) staticMount() string {
	return e.StaticMount
}

func (e BaseEnvironment) accessLogStatus() string {
	return e.AccessLogStatus
}

func (e BaseEnvironment) requestTimeout() time.Duration {
	return e.RequestTimeout
}

func (e BaseEnvironment) enableH2C() bool {
	return e.EnableH2C
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}

		if err := ValidateStatusCodeExpression(e.accessLogStatus()); err != nil {
			return e, errors.Wrap(err, "invalid RH_ACCESS_LOG_STATUS")
		}

		return e, nil
	}
}

// ValidateStatusCodeExpression checks that expr parses as an integer interval
// expression such as "500,504" or "400-599".
func ValidateStatusCodeExpression(expr string) error {
	if _, err := intervals.ParseExpression(expr); err != nil {
		return errors.Wrapf(err, "failed to parse status code expression %q", expr)
	}

	return nil
}
