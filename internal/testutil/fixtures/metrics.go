package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Tania526-sudo/goit-algo-hw-06/internal/metrics"
)

// NewMetricsRegistry creates a registry backed by an in-memory manual reader
func NewMetricsRegistry(t *testing.T, attrs ...attribute.KeyValue) (*metrics.Registry, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	r, err := metrics.NewRegistryFromMeter(provider.Meter("addressbook-test"), attrs...)
	require.NoError(t, err)

	return r, reader
}

// MetricSum collects the reader and returns the summed value of the named
// int64 instrument, or 0 when nothing has been recorded for it yet
func MetricSum(t *testing.T, reader sdkmetric.Reader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)

			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}

	return 0
}
