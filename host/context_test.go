package host_test

import (
	"context"
	"testing"

	"github.com/onsberg/rhttp/host"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogFromContext(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	ctx := host.WithLogger(context.Background(), zap.New(core))

	host.Log(ctx).Info("hello")
	require.Equal(t, 1, observed.Len())
}

func TestLogWithoutWrapperPanics(t *testing.T) {
	require.Panics(t, func() {
		host.Log(context.Background())
	})
}

func TestSpanFromPlainContext(t *testing.T) {
	// without tracing a no-op span comes back, never nil
	span := host.Span(context.Background())
	require.NotNil(t, span)
	require.False(t, span.SpanContext().IsValid())
}
