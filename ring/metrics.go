package ring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/circular/metric"
)

// ringMetrics holds Prometheus metrics for one buffer instance.
type ringMetrics struct {
	inserts    prometheus.Counter
	overwrites prometheus.Counter
	snapshots  prometheus.Counter
	clears     prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
	lifetime    prometheus.Gauge
}

// newRingMetrics creates and registers buffer metrics with the provided registry.
func newRingMetrics(registry *metric.MetricsRegistry, prefix string) (*ringMetrics, error) {
	labels := prometheus.Labels{"component": prefix}

	m := &ringMetrics{
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "circular",
			Subsystem:   "ring",
			Name:        "inserts_total",
			ConstLabels: labels,
			Help:        "Total number of elements inserted",
		}),
		overwrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "circular",
			Subsystem:   "ring",
			Name:        "overwrites_total",
			ConstLabels: labels,
			Help:        "Total number of retained elements displaced by overwrite",
		}),
		snapshots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "circular",
			Subsystem:   "ring",
			Name:        "snapshots_total",
			ConstLabels: labels,
			Help:        "Total number of snapshot materializations",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "circular",
			Subsystem:   "ring",
			Name:        "clears_total",
			ConstLabels: labels,
			Help:        "Total number of buffer clears",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "circular",
			Subsystem:   "ring",
			Name:        "size",
			ConstLabels: labels,
			Help:        "Current number of retained elements",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "circular",
			Subsystem:   "ring",
			Name:        "utilization",
			ConstLabels: labels,
			Help:        "Buffer fill level as a fraction of capacity (0.0 to 1.0)",
		}),
		lifetime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "circular",
			Subsystem:   "ring",
			Name:        "lifetime_count",
			ConstLabels: labels,
			Help:        "Lifetime insertion counter, reset only by Clear",
		}),
	}

	if err := registry.RegisterCounter(prefix, "ring_inserts", m.inserts); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_overwrites", m.overwrites); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_snapshots", m.snapshots); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_clears", m.clears); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ring_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ring_utilization", m.utilization); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ring_lifetime_count", m.lifetime); err != nil {
		return nil, err
	}

	return m, nil
}

// recordInsert increments the insert counter and updates the gauges.
func (m *ringMetrics) recordInsert(size, capacity int, lifetime uint64) {
	m.inserts.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
	m.lifetime.Set(float64(lifetime))
}

// recordOverwrite increments the overwrite counter.
func (m *ringMetrics) recordOverwrite() {
	m.overwrites.Inc()
}

// recordSnapshot increments the snapshot counter.
func (m *ringMetrics) recordSnapshot() {
	m.snapshots.Inc()
}

// recordClear increments the clear counter and zeroes the gauges.
func (m *ringMetrics) recordClear() {
	m.clears.Inc()
	m.size.Set(0)
	m.utilization.Set(0)
	m.lifetime.Set(0)
}
