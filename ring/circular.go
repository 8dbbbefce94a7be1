package ring

import (
	"fmt"

	"github.com/c360/circular/errors"
)

// ringBuffer is the single-threaded circular buffer core. All derived state
// follows from two fields: the fixed backing slice and a monotonic insertion
// counter. The write offset and the oldest surviving element both sit at
// count % capacity.
type ringBuffer[E comparable] struct {
	elements []E
	capacity int
	count    uint64      // lifetime insertions; behavior past 2^64 is undefined
	stats    *Statistics // always initialized
	metrics  *ringMetrics
	opts     *bufferOptions[E]
}

var _ Buffer[int] = (*ringBuffer[int])(nil)

// newRingBuffer creates a new buffer core. Returns an error before any state
// is allocated if the capacity is illegal or metrics registration fails.
func newRingBuffer[E comparable](capacity int, opts *bufferOptions[E]) (*ringBuffer[E], error) {
	if capacity < 1 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "ring", "New",
			fmt.Sprintf("capacity %d", capacity))
	}

	var metrics *ringMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newRingMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "ring", "New", "metrics registration")
		}
	}

	b := &ringBuffer[E]{
		elements: make([]E, capacity),
		capacity: capacity,
		stats:    NewStatistics(),
		metrics:  metrics,
		opts:     opts,
	}

	if opts.logger != nil {
		opts.logger.Debug("ring buffer created", "capacity", capacity)
	}

	// Initial elements go through standard insertion, so an initial sequence
	// longer than the capacity keeps only its last capacity elements.
	b.InsertAll(opts.initial...)

	return b, nil
}

// Insert writes the element at count % capacity, then increments the counter.
// When the buffer is already full this overwrites the oldest element; the
// overwrite callback, if set, observes the displaced element. In concurrent
// buffers the callback runs with the buffer lock held and must not call back
// into the buffer.
func (b *ringBuffer[E]) Insert(element E) {
	pos := int(b.count % uint64(b.capacity))

	if b.count >= uint64(b.capacity) {
		overwritten := b.elements[pos]

		b.stats.Overwrite()
		if b.metrics != nil {
			b.metrics.recordOverwrite()
		}
		if b.opts.overwriteCallback != nil {
			b.opts.overwriteCallback(overwritten)
		}
	}

	b.elements[pos] = element
	b.count++

	b.stats.Insert()
	b.stats.UpdateSize(int64(b.size()))

	if b.metrics != nil {
		b.metrics.recordInsert(b.size(), b.capacity, b.count)
	}
}

// InsertAll inserts each element in iteration order.
func (b *ringBuffer[E]) InsertAll(elements ...E) {
	for _, e := range elements {
		b.Insert(e)
	}
}

// size is the logical size, min(count, capacity). Kept unexported so locked
// wrappers can share the arithmetic without re-entering public methods.
func (b *ringBuffer[E]) size() int {
	if b.count < uint64(b.capacity) {
		return int(b.count)
	}
	return b.capacity
}

// Size returns the number of currently retained elements.
func (b *ringBuffer[E]) Size() int {
	return b.size()
}

// Capacity returns the fixed backing store length.
func (b *ringBuffer[E]) Capacity() int {
	return b.capacity
}

// LifetimeCount returns the insertion counter verbatim, even after the
// buffer has wrapped many times.
func (b *ringBuffer[E]) LifetimeCount() uint64 {
	return b.count
}

// IsEmpty returns true if nothing has been inserted.
func (b *ringBuffer[E]) IsEmpty() bool {
	return b.count == 0
}

// Contains scans only the currently-alive slots. Before the first wrap those
// are the first size() slots; after wrapping every slot is alive, so a plain
// prefix scan is correct in both regimes and never touches stale data.
func (b *ringBuffer[E]) Contains(value E) bool {
	max := b.size()
	for i := 0; i < max; i++ {
		if b.elements[i] == value {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every value is currently retained.
func (b *ringBuffer[E]) ContainsAll(values ...E) bool {
	for _, v := range values {
		if !b.Contains(v) {
			return false
		}
	}
	return true
}

// Snapshot materializes the retained elements in insertion order, oldest
// first. Before the counter passes the capacity the buffer has never
// wrapped, so the snapshot is a plain prefix copy; only after a wrap does
// the two-range concatenation starting at count % capacity apply.
func (b *ringBuffer[E]) Snapshot() []E {
	b.stats.Snapshot()
	if b.metrics != nil {
		b.metrics.recordSnapshot()
	}
	return b.snapshot()
}

func (b *ringBuffer[E]) snapshot() []E {
	out := make([]E, b.size())

	if b.count <= uint64(b.capacity) {
		copy(out, b.elements[:len(out)])
		return out
	}

	offset := int(b.count % uint64(b.capacity))
	n := copy(out, b.elements[offset:])
	copy(out[n:], b.elements[:offset])
	return out
}

// Tail returns the last n retained elements, oldest-of-the-tail first.
func (b *ringBuffer[E]) Tail(n int) ([]E, error) {
	if n < 1 {
		return nil, errors.WrapInvalid(errors.ErrInvalidTailSize, "ring", "Tail",
			fmt.Sprintf("tail size %d", n))
	}

	snap := b.Snapshot()
	if n >= len(snap) {
		return snap, nil
	}
	return snap[len(snap)-n:], nil
}

// Iterate returns a cursor over a snapshot taken now. The cursor holds no
// reference back to the live buffer.
func (b *ringBuffer[E]) Iterate() *Cursor[E] {
	return newCursor(b.Snapshot())
}

// TailIterate returns a cursor over the last n elements.
func (b *ringBuffer[E]) TailIterate(n int) (*Cursor[E], error) {
	tail, err := b.Tail(n)
	if err != nil {
		return nil, errors.Wrap(err, "ring", "TailIterate", "tail materialization")
	}
	return newCursor(tail), nil
}

// Clear resets the counter and zeroes every slot so retained elements become
// unreachable for GC. A cleared buffer is indistinguishable from a freshly
// constructed one.
func (b *ringBuffer[E]) Clear() {
	var zero E
	for i := range b.elements {
		b.elements[i] = zero
	}
	b.count = 0

	b.stats.Clear()
	b.stats.UpdateSize(0)
	if b.metrics != nil {
		b.metrics.recordClear()
	}
	if b.opts.logger != nil {
		b.opts.logger.Debug("ring buffer cleared", "capacity", b.capacity)
	}
}

// Stats returns buffer statistics (always available for observability).
func (b *ringBuffer[E]) Stats() *Statistics {
	return b.stats
}
