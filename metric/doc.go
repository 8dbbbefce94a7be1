// Package metric provides Prometheus metrics registration and exposition for
// the circular buffer library.
//
// The MetricsRegistry wraps a private prometheus.Registry and namespaces
// every collector with a component key, so multiple buffers in one process
// can export metrics without name collisions. Buffers opt in through the
// ring.WithMetrics option:
//
//	registry := metric.NewMetricsRegistry()
//	buf, err := ring.New[string](1000,
//		ring.WithMetrics[string](registry, "recent_logs"),
//	)
//
// Exposition is optional. A hosting process that wants a /metrics endpoint
// runs the bundled Server:
//
//	srv := metric.NewServer(9090, "/metrics", registry, nil)
//	go srv.Start()
//	defer srv.Stop()
//
// Registration failures return classified errors from the errors package;
// duplicate registration is ErrDuplicateMetric and classified invalid.
package metric
