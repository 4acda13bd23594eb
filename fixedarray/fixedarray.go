// Package fixedarray implements a capacity-bounded array over the alloc
// seam: one block at construction, explicit length tracking, and an explicit
// Release at end of life.
package fixedarray

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/arrkit/alloc"
)

// Array is a fixed-capacity container. The first Len() slots of its block
// hold live elements; the rest always hold the zero value. Capacity is set
// at construction and never changes.
//
// Array is not safe for concurrent use; callers needing sharing must
// synchronize externally.
type Array[T any] struct {
	block     alloc.Block[T]
	capacity  int
	length    int
	allocator alloc.Allocator[T]
}

// New allocates an Array for exactly capacity elements in one block.
// capacity 0 is valid: the array never allocates and every Push reports
// ErrFull. Negative capacity, an overflowing byte footprint, or allocator
// failure surface the corresponding alloc sentinel; no partially-built
// array is ever returned.
func New[T any](capacity int, opts ...Option[T]) (*Array[T], error) {
	cfg := defaultConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	block, err := cfg.allocator.Allocate(capacity)
	if err != nil {
		return nil, err
	}

	return &Array[T]{
		block:     block,
		capacity:  capacity,
		length:    0,
		allocator: cfg.allocator,
	}, nil
}

// FromSlice builds an Array of the given capacity holding a copy of values.
// Returns ErrFull when values exceed capacity.
func FromSlice[T any](values []T, capacity int, opts ...Option[T]) (*Array[T], error) {
	if len(values) > capacity {
		return nil, fmt.Errorf("%w: %d values exceed capacity %d", ErrFull, len(values), capacity)
	}

	arr, err := New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		// Cannot fail: length was checked against capacity above.
		if err = arr.Push(v); err != nil {
			arr.Release()

			return nil, err
		}
	}

	return arr, nil
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.length }

// Cap returns the fixed capacity.
func (a *Array[T]) Cap() int { return a.capacity }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.length == 0 }

// Push appends v to the end. Returns ErrFull when Len() == Cap(); the array
// is left unchanged and the caller keeps v. Never reallocates.
func (a *Array[T]) Push(v T) error {
	if a.length == a.capacity {
		return ErrFull
	}
	a.block.Set(a.length, v)
	a.length++

	return nil
}

// Pop removes and returns the last element. The vacated slot is dropped
// (zeroed) so the array no longer owns anything the element referenced.
// Returns false on an empty array.
func (a *Array[T]) Pop() (T, bool) {
	var zero T
	if a.length == 0 {
		return zero, false
	}
	a.length--
	v := a.block.At(a.length)
	a.block.Clear(a.length)

	return v, true
}

// Get returns the element at index i. Bounds are checked against Len(),
// never Cap(), so the free region is unreachable. An absent index is an
// ordinary false, not an error.
func (a *Array[T]) Get(i int) (T, bool) {
	if i < 0 || i >= a.length {
		var zero T

		return zero, false
	}

	return a.block.At(i), true
}

// Ref returns a pointer to the element at index i for in-place mutation,
// or false when i is outside [0, Len()).
func (a *Array[T]) Ref(i int) (*T, bool) {
	if i < 0 || i >= a.length {
		return nil, false
	}

	return a.block.Ref(i), true
}

// Set replaces the element at index i, dropping the old value first so
// nothing it referenced leaks. A write outside [0, Len()) never happens:
// it returns ErrIndexOutOfBounds.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.length {
		return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfBounds, i, a.length)
	}
	a.block.Clear(i)
	a.block.Set(i, v)

	return nil
}

// Clear drops every element in ascending index order. Capacity and the
// block are retained; the array is immediately reusable.
func (a *Array[T]) Clear() {
	a.block.ClearRange(0, a.length)
	a.length = 0
}

// Release drops every element in ascending order, then returns the block to
// the allocator. The array becomes a spent zero-capacity container: every
// Push reports ErrFull, and further Release calls are no-ops, so the block
// can never be returned twice.
func (a *Array[T]) Release() {
	a.Clear()
	a.allocator.Deallocate(a.block)
	a.block = alloc.Block[T]{}
	a.capacity = 0
}

// Slice returns a read view of the live prefix [0, Len()), valid until the
// next mutation. Its capacity is pinned, so appends cannot reach the free
// region.
func (a *Array[T]) Slice() []T {
	return a.block.Slice(a.length)
}

// String renders the live elements as "[a, b, c]".
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", a.block.At(i))
	}
	sb.WriteByte(']')

	return sb.String()
}
