// Package cell provides minimal observable state containers. A Cell holds a
// single value that is replaced wholesale on every write, so readers never
// observe a partially updated state. The Getter interface abstracts "reads
// through to the current value", letting consumers accept either a live cell
// or a plain value without caring which they got.
package cell

import "sync"

// Getter reads through to the current value of some source.
type Getter[T any] interface {
	Get() T
}

// Cell is an update-on-write container safe for concurrent readers.
type Cell[T any] struct {
	mu sync.RWMutex
	v  T
}

// New returns a cell holding v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

// Set replaces the stored value wholesale.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Swap stores v and returns the previous value.
func (c *Cell[T]) Swap(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.v
	c.v = v
	return prev
}

// Static wraps a plain value as a Getter that always returns it.
func Static[T any](v T) Getter[T] {
	return static[T]{v: v}
}

type static[T any] struct {
	v T
}

func (s static[T]) Get() T { return s.v }

// Func adapts a function to the Getter interface.
type Func[T any] func() T

func (f Func[T]) Get() T { return f() }
