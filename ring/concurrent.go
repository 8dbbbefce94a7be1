package ring

import "sync"

// concurrentBuffer is a mutual-exclusion veneer over a ringBuffer it owns
// exclusively. Every public operation, reads included, runs inside the same
// single lock, so no caller ever observes the counter advanced without the
// corresponding slot written (or vice versa). The lock is released on every
// exit path, error paths included.
//
// There is no fairness guarantee beyond what sync.Mutex provides and no
// reentrancy: calling the buffer from inside an overwrite callback deadlocks.
type concurrentBuffer[E comparable] struct {
	mu    sync.Mutex
	inner *ringBuffer[E]
}

var _ Buffer[int] = (*concurrentBuffer[int])(nil)

func (c *concurrentBuffer[E]) Insert(element E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Insert(element)
}

func (c *concurrentBuffer[E]) InsertAll(elements ...E) {
	// The whole batch is one critical section: readers see either none or
	// all of it.
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.InsertAll(elements...)
}

func (c *concurrentBuffer[E]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Size()
}

func (c *concurrentBuffer[E]) Capacity() int {
	return c.inner.Capacity() // immutable after construction, no lock needed
}

func (c *concurrentBuffer[E]) LifetimeCount() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.LifetimeCount()
}

func (c *concurrentBuffer[E]) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.IsEmpty()
}

func (c *concurrentBuffer[E]) Contains(value E) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Contains(value)
}

func (c *concurrentBuffer[E]) ContainsAll(values ...E) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.ContainsAll(values...)
}

func (c *concurrentBuffer[E]) Snapshot() []E {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Snapshot()
}

func (c *concurrentBuffer[E]) Tail(n int) ([]E, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Tail(n)
}

// Iterate materializes the snapshot under the lock; the returned cursor is
// then safe to traverse without further locking.
func (c *concurrentBuffer[E]) Iterate() *Cursor[E] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Iterate()
}

func (c *concurrentBuffer[E]) TailIterate(n int) (*Cursor[E], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.TailIterate(n)
}

func (c *concurrentBuffer[E]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Clear()
}

func (c *concurrentBuffer[E]) Stats() *Statistics {
	return c.inner.Stats() // Statistics is internally synchronized
}
