// Package collection adapts ring buffers to a general-purpose collection
// contract at the boundary, rejecting the members a bounded overwrite buffer
// cannot honestly support.
//
// The ring package implements the narrow "append + bounded retention" type;
// generic callers that expect a collection-shaped surface wrap it here:
//
//	buf, _ := ring.NewConcurrent[string](100)
//	c := collection.Wrap(buf)
//	c.AddAll("a", "b", "c")
//	lines := c.Values()
//
// Removal and retention are deliberately unsupported: they fail with
// ErrUnsupportedOperation and perform no mutation. That is a statement about
// the type's identity, not a missing feature - rejecting them here keeps the
// core buffer free of dead contract points.
package collection

import (
	"fmt"

	"github.com/c360/circular/errors"
	"github.com/c360/circular/ring"
)

// Interface is the collection-like surface consumed by generic callers.
// Mutating members that the circular contract cannot support return
// ErrUnsupportedOperation.
type Interface[E comparable] interface {
	// Add inserts an element. Always succeeds for a circular buffer; the
	// bool return mirrors the usual "collection changed" contract.
	Add(element E) bool

	// AddAll inserts every element in order. Returns false for empty input
	// (the collection did not change), true otherwise.
	AddAll(elements ...E) bool

	Size() int
	IsEmpty() bool
	Contains(value E) bool
	ContainsAll(values ...E) bool

	// Values returns the retained elements in insertion order, oldest first.
	Values() []E

	// CopyInto writes the retained elements into dst. If dst is shorter
	// than Size, a fresh right-sized slice is returned instead; if longer,
	// the zero value of E is placed immediately after the last element as
	// an end marker and dst is returned.
	CopyInto(dst []E) []E

	// Iterator returns a point-in-time cursor, oldest first.
	Iterator() *ring.Cursor[E]

	Clear()

	// Remove, RemoveAll and RetainAll always fail with
	// ErrUnsupportedOperation and never mutate the collection.
	Remove(value E) error
	RemoveAll(values ...E) error
	RetainAll(values ...E) error
}

// Adapter presents a ring.Buffer through the collection contract, plus the
// extension surface (LifetimeCount, Tail, TailIterator) that circular
// buffers offer beyond it.
type Adapter[E comparable] struct {
	buf ring.Buffer[E]
}

var _ Interface[string] = (*Adapter[string])(nil)

// Wrap adapts a ring buffer to the collection contract. The adapter holds
// the buffer itself, so its thread safety is exactly that of the wrapped
// buffer.
func Wrap[E comparable](buf ring.Buffer[E]) *Adapter[E] {
	return &Adapter[E]{buf: buf}
}

// Buffer returns the wrapped ring buffer.
func (a *Adapter[E]) Buffer() ring.Buffer[E] {
	return a.buf
}

// Add inserts an element, overwriting the oldest one when full.
func (a *Adapter[E]) Add(element E) bool {
	a.buf.Insert(element)
	return true
}

// AddAll inserts every element in iteration order.
func (a *Adapter[E]) AddAll(elements ...E) bool {
	if len(elements) == 0 {
		return false
	}
	a.buf.InsertAll(elements...)
	return true
}

// Size returns the number of currently retained elements.
func (a *Adapter[E]) Size() int {
	return a.buf.Size()
}

// IsEmpty reports whether nothing is retained.
func (a *Adapter[E]) IsEmpty() bool {
	return a.buf.IsEmpty()
}

// Contains reports whether value is currently retained.
func (a *Adapter[E]) Contains(value E) bool {
	return a.buf.Contains(value)
}

// ContainsAll reports whether every value is currently retained.
// Empty input yields true.
func (a *Adapter[E]) ContainsAll(values ...E) bool {
	return a.buf.ContainsAll(values...)
}

// Values returns an ordered copy of the retained elements, oldest first.
func (a *Adapter[E]) Values() []E {
	return a.buf.Snapshot()
}

// CopyInto fills a caller-supplied destination with the retained elements.
func (a *Adapter[E]) CopyInto(dst []E) []E {
	values := a.buf.Snapshot()
	if len(dst) < len(values) {
		return values
	}
	copy(dst, values)
	if len(dst) > len(values) {
		var zero E
		dst[len(values)] = zero
	}
	return dst
}

// Iterator returns a cursor over a snapshot taken at call time.
func (a *Adapter[E]) Iterator() *ring.Cursor[E] {
	return a.buf.Iterate()
}

// Clear resets the underlying buffer.
func (a *Adapter[E]) Clear() {
	a.buf.Clear()
}

// Remove always fails: a circular buffer only ever discards its oldest
// element, and only as a side effect of insertion.
func (a *Adapter[E]) Remove(value E) error {
	return errors.WrapInvalid(errors.ErrUnsupportedOperation, "collection", "Remove",
		fmt.Sprintf("removal of %v", value))
}

// RemoveAll always fails with ErrUnsupportedOperation.
func (a *Adapter[E]) RemoveAll(...E) error {
	return errors.WrapInvalid(errors.ErrUnsupportedOperation, "collection", "RemoveAll",
		"bulk removal")
}

// RetainAll always fails with ErrUnsupportedOperation.
func (a *Adapter[E]) RetainAll(...E) error {
	return errors.WrapInvalid(errors.ErrUnsupportedOperation, "collection", "RetainAll",
		"retention filtering")
}

// LifetimeCount exposes the wrapped buffer's lifetime insertion counter.
func (a *Adapter[E]) LifetimeCount() uint64 {
	return a.buf.LifetimeCount()
}

// Tail returns the last n retained elements, oldest-of-the-tail first.
func (a *Adapter[E]) Tail(n int) ([]E, error) {
	return a.buf.Tail(n)
}

// TailIterator returns a cursor over the last n retained elements.
func (a *Adapter[E]) TailIterator(n int) (*ring.Cursor[E], error) {
	return a.buf.TailIterate(n)
}
