package ring

import (
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/circular/errors"
	"github.com/c360/circular/metric"
)

func TestMetricsExport(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	buf, err := New[int](2, WithMetrics[int](registry, "test_buffer"))
	require.NoError(t, err)

	buf.Insert(1)
	buf.Insert(2)
	buf.Insert(3) // one overwrite
	buf.Snapshot()

	inner := buf.(*ringBuffer[int])
	require.NotNil(t, inner.metrics)

	assert.Equal(t, float64(3), testutil.ToFloat64(inner.metrics.inserts))
	assert.Equal(t, float64(1), testutil.ToFloat64(inner.metrics.overwrites))
	assert.Equal(t, float64(1), testutil.ToFloat64(inner.metrics.snapshots))
	assert.Equal(t, float64(2), testutil.ToFloat64(inner.metrics.size))
	assert.Equal(t, float64(1), testutil.ToFloat64(inner.metrics.utilization))
	assert.Equal(t, float64(3), testutil.ToFloat64(inner.metrics.lifetime))

	buf.Clear()
	assert.Equal(t, float64(1), testutil.ToFloat64(inner.metrics.clears))
	assert.Equal(t, float64(0), testutil.ToFloat64(inner.metrics.size))
	assert.Equal(t, float64(0), testutil.ToFloat64(inner.metrics.lifetime))
}

func TestMetricsDuplicatePrefixFailsConstruction(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	_, err := New[int](2, WithMetrics[int](registry, "dup"))
	require.NoError(t, err)

	buf, err := New[int](2, WithMetrics[int](registry, "dup"))
	require.Error(t, err)
	assert.Nil(t, buf)
}

func TestMetricsOptionIgnoredWithoutRegistry(t *testing.T) {
	buf, err := New[int](2, WithMetrics[int](nil, "ignored"))
	require.NoError(t, err)

	inner := buf.(*ringBuffer[int])
	assert.Nil(t, inner.metrics)

	registry := metric.NewMetricsRegistry()
	buf2, err := New[int](2, WithMetrics[int](registry, ""))
	require.NoError(t, err)
	assert.Nil(t, buf2.(*ringBuffer[int]).metrics)
}

func TestConcurrentBufferWithMetrics(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	buf, err := NewConcurrent[string](3,
		WithMetrics[string](registry, "concurrent_buffer"),
		WithLogger[string](slog.Default()),
	)
	require.NoError(t, err)

	buf.InsertAll("a", "b", "c", "d")

	inner := buf.(*concurrentBuffer[string]).inner
	require.NotNil(t, inner.metrics)
	assert.Equal(t, float64(4), testutil.ToFloat64(inner.metrics.inserts))
	assert.Equal(t, float64(1), testutil.ToFloat64(inner.metrics.overwrites))
}

func TestMetricsRegistrationFailureIsClassified(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	_, err := New[int](2, WithMetrics[int](registry, "classified"))
	require.NoError(t, err)

	_, err = New[int](2, WithMetrics[int](registry, "classified"))
	require.Error(t, err)
	// Surfaces as a classified error from the errors framework.
	assert.NotEqual(t, errors.ErrorFatal, errors.Classify(err))
}
