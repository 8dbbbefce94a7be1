package ring

import (
	"log/slog"

	"github.com/c360/circular/metric"
)

// Option configures buffer behavior using the functional options pattern.
type Option[E comparable] func(*bufferOptions[E])

// OverwriteCallback is called when a retained element is displaced by an
// insert into a full buffer. It receives the element that was overwritten.
type OverwriteCallback[E comparable] func(element E)

// bufferOptions holds internal configuration for buffer instances.
// Stats are ALWAYS collected - they are not optional.
// Metrics are optional and enabled via WithMetrics().
type bufferOptions[E comparable] struct {
	initial           []E
	overwriteCallback OverwriteCallback[E]
	logger            *slog.Logger

	// metricsReg is optional - if provided, buffer stats are also exposed
	// as Prometheus metrics under the metricsPrefix component label
	metricsReg    *metric.MetricsRegistry
	metricsPrefix string
}

// WithInitial prefills the buffer by inserting the given elements in order
// during construction. If there are more elements than the capacity, only
// the last capacity of them survive, and the lifetime counter reflects
// every one of them.
func WithInitial[E comparable](elements ...E) Option[E] {
	return func(opts *bufferOptions[E]) {
		opts.initial = elements
	}
}

// WithMetrics enables Prometheus metrics export for buffer statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics[E comparable](registry *metric.MetricsRegistry, prefix string) Option[E] {
	return func(opts *bufferOptions[E]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithOverwriteCallback sets a callback invoked with each element displaced
// by overwrite. On concurrent buffers the callback runs while the buffer
// lock is held; it must be fast and must not call back into the buffer.
func WithOverwriteCallback[E comparable](callback OverwriteCallback[E]) Option[E] {
	return func(opts *bufferOptions[E]) {
		opts.overwriteCallback = callback
	}
}

// WithLogger attaches a structured logger for debug-level lifecycle events
// (construction, clear). The hot insert path never logs. Nil disables
// logging, which is the default.
func WithLogger[E comparable](logger *slog.Logger) Option[E] {
	return func(opts *bufferOptions[E]) {
		opts.logger = logger
	}
}

// applyOptions applies functional options to create final buffer configuration.
func applyOptions[E comparable](options ...Option[E]) *bufferOptions[E] {
	opts := &bufferOptions[E]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
