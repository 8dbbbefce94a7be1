// Package ring provides generic fixed-capacity circular buffers that
// overwrite their oldest element when full.
//
// Two flavors exist behind one Buffer interface:
//   - New: single-threaded core, no locking overhead
//   - NewConcurrent: the same core behind a single mutex
//
// Statistics are always collected for observability. Prometheus metrics can
// be optionally enabled via the WithMetrics() functional option.
package ring

// Buffer represents a fixed-capacity circular buffer that all buffer
// implementations must satisfy. The buffer is parameterized by element
// type E; element equality (Contains, ContainsAll) uses ==.
type Buffer[E comparable] interface {
	// Insert adds an element to the buffer. It always succeeds; when the
	// buffer is full the oldest element is silently overwritten.
	Insert(element E)

	// InsertAll inserts each element in order, with the same overwrite
	// behavior as Insert.
	InsertAll(elements ...E)

	// Size returns the number of currently retained elements,
	// min(LifetimeCount, Capacity).
	Size() int

	// Capacity returns the fixed maximum number of retained elements.
	Capacity() int

	// LifetimeCount returns the total number of elements ever inserted
	// since creation or the last Clear, unbounded by capacity.
	LifetimeCount() uint64

	// IsEmpty returns true if nothing has been inserted since creation or
	// the last Clear.
	IsEmpty() bool

	// Contains reports whether value equals any currently retained element.
	// Elements already overwritten are never considered.
	Contains(value E) bool

	// ContainsAll reports whether every given value satisfies Contains.
	// An empty input yields true.
	ContainsAll(values ...E) bool

	// Snapshot returns an ordered point-in-time copy of the retained
	// elements, oldest first. The returned slice is owned by the caller.
	Snapshot() []E

	// Tail returns the last n elements of the snapshot, oldest-of-the-tail
	// first. When n >= Size it is equivalent to Snapshot. Fails with
	// ErrInvalidTailSize when n < 1.
	Tail(n int) ([]E, error)

	// Iterate returns a restartable cursor over a snapshot taken at call
	// time. Later inserts do not affect an in-progress iteration.
	Iterate() *Cursor[E]

	// TailIterate returns a cursor over the last n elements, with the same
	// validation as Tail.
	TailIterate(n int) (*Cursor[E], error)

	// Clear resets the lifetime counter to zero and zeroes all slots.
	Clear()

	// Stats returns buffer statistics (always available for observability).
	Stats() *Statistics
}

// New creates a single-threaded circular buffer with the specified capacity
// and options. Fails with ErrInvalidCapacity when capacity < 1, or with a
// classified error when metrics registration was requested and fails.
//
// The returned buffer performs no locking: concurrent unsynchronized use is
// a data race. Use NewConcurrent for shared buffers.
func New[E comparable](capacity int, options ...Option[E]) (Buffer[E], error) {
	opts := applyOptions(options...)
	return newRingBuffer(capacity, opts)
}

// NewConcurrent creates a circular buffer safe for concurrent use. Every
// operation, reads included, is serialized through one mutex scoped to the
// whole buffer, so the lifetime counter and slot contents are always
// observed as a consistent pair.
func NewConcurrent[E comparable](capacity int, options ...Option[E]) (Buffer[E], error) {
	opts := applyOptions(options...)
	inner, err := newRingBuffer(capacity, opts)
	if err != nil {
		return nil, err
	}
	return &concurrentBuffer[E]{inner: inner}, nil
}
