package collection

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/circular/errors"
	"github.com/c360/circular/ring"
)

func newAdapter(t *testing.T, capacity int, opts ...ring.Option[string]) *Adapter[string] {
	t.Helper()
	buf, err := ring.New[string](capacity, opts...)
	require.NoError(t, err)
	return Wrap(buf)
}

func TestAddAndQuery(t *testing.T) {
	c := newAdapter(t, 2)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Size())

	assert.True(t, c.Add("a"))
	assert.True(t, c.Add("b"))
	assert.True(t, c.Add("c"), "add into a full collection still succeeds")

	assert.Equal(t, 2, c.Size())
	assert.Equal(t, []string{"b", "c"}, c.Values())
	assert.True(t, c.Contains("c"))
	assert.False(t, c.Contains("a"))
	assert.Equal(t, uint64(3), c.LifetimeCount())
}

func TestAddAll(t *testing.T) {
	c := newAdapter(t, 3)

	assert.False(t, c.AddAll(), "empty input does not change the collection")
	assert.True(t, c.AddAll("a", "b"))
	assert.Equal(t, []string{"a", "b"}, c.Values())
}

func TestContainsAll(t *testing.T) {
	c := newAdapter(t, 2)
	c.AddAll("a", "b")

	assert.True(t, c.ContainsAll("a", "b"))
	assert.False(t, c.ContainsAll("a", "c"))
	assert.True(t, c.ContainsAll())
}

func TestCopyIntoShorterDestination(t *testing.T) {
	c := newAdapter(t, 3)
	c.AddAll("a", "b", "c")

	dst := make([]string, 1)
	out := c.CopyInto(dst)

	// Too-short destination is replaced by a fresh right-sized slice.
	assert.Equal(t, []string{"a", "b", "c"}, out)
	assert.NotSame(t, &dst[0], &out[0])
}

func TestCopyIntoExactDestination(t *testing.T) {
	c := newAdapter(t, 3)
	c.AddAll("a", "b", "c")

	dst := make([]string, 3)
	out := c.CopyInto(dst)

	assert.Equal(t, []string{"a", "b", "c"}, out)
	assert.Same(t, &dst[0], &out[0])
}

func TestCopyIntoLongerDestinationPlacesSentinel(t *testing.T) {
	c := newAdapter(t, 3)
	c.AddAll("a", "b")

	dst := []string{"x", "x", "x", "x", "x"}
	out := c.CopyInto(dst)

	// Zero value marks the end, positions beyond it are untouched.
	assert.Equal(t, []string{"a", "b", "", "x", "x"}, out)
}

func TestIterator(t *testing.T) {
	c := newAdapter(t, 3)
	c.AddAll("a", "b", "c", "d")

	assert.Equal(t, []string{"b", "c", "d"}, c.Iterator().Collect())

	// Point in time: later adds are invisible.
	it := c.Iterator()
	c.Add("e")
	assert.Equal(t, []string{"b", "c", "d"}, it.Collect())
}

func TestTailPassThrough(t *testing.T) {
	c := newAdapter(t, 3)
	c.AddAll("a", "b", "c", "d")

	tail, err := c.Tail(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, tail)

	it, err := c.TailIterator(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, it.Collect())

	_, err = c.Tail(0)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidTailSize))
}

func TestUnsupportedOperations(t *testing.T) {
	c := newAdapter(t, 2)
	c.AddAll("a", "b")

	tests := []struct {
		name string
		call func() error
	}{
		{"Remove", func() error { return c.Remove("a") }},
		{"RemoveAll", func() error { return c.RemoveAll("a", "b") }},
		{"RetainAll", func() error { return c.RetainAll("a") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrUnsupportedOperation))
			assert.True(t, errors.IsInvalid(err))

			// Failed calls leave the collection untouched.
			assert.Equal(t, []string{"a", "b"}, c.Values())
			assert.Equal(t, uint64(2), c.LifetimeCount())
		})
	}
}

func TestClear(t *testing.T) {
	c := newAdapter(t, 2)
	c.AddAll("a", "b", "c")

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, uint64(0), c.LifetimeCount())
	assert.Empty(t, c.Values())
}

func TestWrapConcurrentBuffer(t *testing.T) {
	buf, err := ring.NewConcurrent[string](2)
	require.NoError(t, err)
	c := Wrap(buf)

	c.AddAll("a", "b", "c")
	assert.Equal(t, []string{"b", "c"}, c.Values())
	assert.Same(t, buf, c.Buffer())
}
