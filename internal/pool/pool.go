// Package pool provides reusable scratch buffers for hot request paths.
package pool

import "sync"

// Pool is a typed wrapper around sync.Pool. An optional reset function is
// applied to every item on Put so callers always Get a clean value.
type Pool[T any] struct {
	internal sync.Pool
	reset    func(T) T
}

// New creates a new Pool with the given constructor.
func New[T any](newFn func() T) *Pool[T] {
	return NewWithReset(newFn, nil)
}

// NewWithReset creates a Pool whose items are passed through reset on Put.
func NewWithReset[T any](newFn func() T, reset func(T) T) *Pool[T] {
	return &Pool[T]{
		internal: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
		reset: reset,
	}
}

// Get retrieves an item from the pool.
func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

// Put returns an item to the pool.
func (p *Pool[T]) Put(item T) {
	if p.reset != nil {
		item = p.reset(item)
	}
	p.internal.Put(item)
}

// maxRetainedIndexes caps the buffers kept by IndexBuffers so one huge
// request does not pin memory forever.
const maxRetainedIndexes = 1 << 14

// IndexBuffers returns a pool of *[]int buffers with length reset to zero.
// Buffers that grew beyond maxRetainedIndexes are replaced on Put.
func IndexBuffers(initialCap int) *Pool[*[]int] {
	return NewWithReset(
		func() *[]int {
			buf := make([]int, 0, initialCap)
			return &buf
		},
		func(buf *[]int) *[]int {
			if cap(*buf) > maxRetainedIndexes {
				fresh := make([]int, 0, initialCap)
				return &fresh
			}
			*buf = (*buf)[:0]
			return buf
		},
	)
}
