package oteladapters_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/holdqueue/holdstore/oteladapters"
)

func newTestMeterSetup() (*sdkmetric.ManualReader, *oteladapters.MetricsCollector) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return reader, oteladapters.NewMetricsCollector(provider.Meter("test"))
}

func collectMetric(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m
			}
		}
	}

	require.Failf(t, "metric not found", "metric %q was not collected", name)

	return metricdata.Metrics{}
}

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	// arrange
	reader, collector := newTestMeterSetup()

	// act
	collector.RecordDuration(
		"holdstore_transaction_duration_seconds",
		250*time.Millisecond,
		map[string]string{"operation": "place_hold", "status": "committed"},
	)

	// assert
	m := collectMetric(t, reader, "holdstore_transaction_duration_seconds")
	assert.Equal(t, "s", m.Unit)

	histogram, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "expected a float64 histogram")
	require.Len(t, histogram.DataPoints, 1)

	dp := histogram.DataPoints[0]
	assert.Equal(t, uint64(1), dp.Count)
	assert.InDelta(t, 0.25, dp.Sum, 0.0001)

	value, found := dp.Attributes.Value(attribute.Key("operation"))
	assert.True(t, found)
	assert.Equal(t, "place_hold", value.AsString())
}

func Test_MetricsCollector_IncrementCounter(t *testing.T) {
	// arrange
	reader, collector := newTestMeterSetup()
	labels := map[string]string{"operation": "return_unit"}

	// act
	collector.IncrementCounter("holdstore_transactions_total", labels)
	collector.IncrementCounterContext(context.Background(), "holdstore_transactions_total", labels)

	// assert
	m := collectMetric(t, reader, "holdstore_transactions_total")
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected an int64 sum")
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
}

func Test_MetricsCollector_RecordValue(t *testing.T) {
	// arrange
	reader, collector := newTestMeterSetup()

	// act
	collector.RecordValue("holdstore_snapshot_size_bytes", 512, nil)
	collector.RecordValueContext(context.Background(), "holdstore_snapshot_size_bytes", 1024, nil)

	// assert
	m := collectMetric(t, reader, "holdstore_snapshot_size_bytes")
	gauge, ok := m.Data.(metricdata.Gauge[float64])
	require.True(t, ok, "expected a float64 gauge")
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 1024.0, gauge.DataPoints[0].Value, 0.0001)
}

func Test_MetricsCollector_ConcurrentUse(t *testing.T) {
	// arrange
	reader, collector := newTestMeterSetup()
	var wg sync.WaitGroup

	// act
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.IncrementCounter("holdqueue_commands_total", map[string]string{"command_type": "PlaceHold"})
		}()
	}
	wg.Wait()

	// assert
	m := collectMetric(t, reader, "holdqueue_commands_total")
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(20), sum.DataPoints[0].Value)
}
