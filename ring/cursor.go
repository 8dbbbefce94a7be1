package ring

// Cursor is a bounded, read-only traversal over an already-materialized
// ordered copy of buffer contents. It advances through a plain [pos, end)
// index range; because the backing slice is a point-in-time snapshot, a
// cursor never observes inserts that happen after its creation and needs
// no locking.
type Cursor[E comparable] struct {
	data []E
	pos  int
	end  int
}

func newCursor[E comparable](data []E) *Cursor[E] {
	return &Cursor[E]{data: data, end: len(data)}
}

// Next returns the next element and advances the cursor. The second return
// is false once the cursor is exhausted.
func (c *Cursor[E]) Next() (E, bool) {
	if c.pos >= c.end {
		var zero E
		return zero, false
	}
	e := c.data[c.pos]
	c.pos++
	return e, true
}

// HasNext reports whether another Next call will yield an element.
func (c *Cursor[E]) HasNext() bool {
	return c.pos < c.end
}

// Remaining returns the number of elements not yet yielded.
func (c *Cursor[E]) Remaining() int {
	return c.end - c.pos
}

// Collect drains the cursor into a slice. Useful in tests and for callers
// that decide mid-iteration they want the rest at once.
func (c *Cursor[E]) Collect() []E {
	out := make([]E, 0, c.Remaining())
	for {
		e, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}
