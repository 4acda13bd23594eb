// Package dynarray implements the growable array: bootstrap-then-double
// growth, hysteresis shrink, and an ownership-transferring Drain iterator.
package dynarray

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/katalvlaran/arrkit/alloc"
)

// DynamicArray is a growable container. The first Len() slots of its block
// hold live elements; the rest always hold the zero value. Capacity is 0
// exactly when no block is allocated.
//
// DynamicArray is not safe for concurrent use; callers needing sharing must
// synchronize externally.
type DynamicArray[T any] struct {
	block     alloc.Block[T]
	capacity  int
	length    int
	allocator alloc.Allocator[T]
}

// New returns an empty DynamicArray that has performed no allocation:
// capacity 0, no block. The first Push allocates.
func New[T any](opts ...Option[T]) *DynamicArray[T] {
	cfg := defaultConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &DynamicArray[T]{allocator: cfg.allocator}
}

// WithCapacity returns an empty DynamicArray pre-allocated for capacity
// elements, so the first capacity pushes never grow. capacity 0 is
// equivalent to New. Construction errors mirror fixedarray.New.
func WithCapacity[T any](capacity int, opts ...Option[T]) (*DynamicArray[T], error) {
	d := New[T](opts...)
	block, err := d.allocator.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	d.block = block
	d.capacity = capacity

	return d, nil
}

// FromSlice builds a DynamicArray holding a copy of values, sized exactly
// for them.
func FromSlice[T any](values []T, opts ...Option[T]) (*DynamicArray[T], error) {
	d, err := WithCapacity[T](len(values), opts...)
	if err != nil {
		return nil, err
	}
	if err = d.Append(values...); err != nil {
		d.Release()

		return nil, err
	}

	return d, nil
}

// Len returns the number of live elements.
func (d *DynamicArray[T]) Len() int { return d.length }

// Cap returns the current capacity; 0 means no block is allocated.
func (d *DynamicArray[T]) Cap() int { return d.capacity }

// IsEmpty reports whether the array holds no elements.
func (d *DynamicArray[T]) IsEmpty() bool { return d.length == 0 }

// Push appends v to the end, growing first when the block is full. The only
// failure mode is growth itself (capacity overflow or allocator refusal),
// and a failed growth leaves the array in its exact prior state — never a
// torn one.
func (d *DynamicArray[T]) Push(v T) error {
	if d.length == d.capacity {
		if err := d.grow(); err != nil {
			return err
		}
	}
	d.block.Set(d.length, v)
	d.length++

	return nil
}

// grow replaces the block with one sized by the policy: bootstrap to 1 from
// the unallocated state, otherwise double with a checked multiplication.
// The old block is released by the allocator only after the replacement is
// populated, so the elements are never in neither block.
func (d *DynamicArray[T]) grow() error {
	if d.capacity == 0 {
		block, err := d.allocator.Allocate(bootstrapCapacity)
		if err != nil {
			return err
		}
		d.block = block
		d.capacity = bootstrapCapacity

		return nil
	}

	if d.capacity > math.MaxInt/GrowthFactor {
		return fmt.Errorf("%w: cannot double capacity %d", alloc.ErrCapacityOverflow, d.capacity)
	}
	newCapacity := d.capacity * GrowthFactor

	block, err := d.allocator.Grow(d.block, d.length, newCapacity)
	if err != nil {
		return err
	}
	d.block = block
	d.capacity = newCapacity

	return nil
}

// Pop removes and returns the last element, dropping its slot. Returns
// false on an empty array. Pop never shrinks; reclaiming space is the
// caller's explicit ShrinkToFit decision.
func (d *DynamicArray[T]) Pop() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	d.length--
	v := d.block.At(d.length)
	d.block.Clear(d.length)

	return v, true
}

// Get returns the element at index i. Bounds are checked against Len(),
// never Cap().
func (d *DynamicArray[T]) Get(i int) (T, bool) {
	if i < 0 || i >= d.length {
		var zero T

		return zero, false
	}

	return d.block.At(i), true
}

// Ref returns a pointer to the element at index i for in-place mutation,
// or false when i is outside [0, Len()).
func (d *DynamicArray[T]) Ref(i int) (*T, bool) {
	if i < 0 || i >= d.length {
		return nil, false
	}

	return d.block.Ref(i), true
}

// Set replaces the element at index i, dropping the old value first.
// Returns ErrIndexOutOfBounds outside [0, Len()); the write never happens.
func (d *DynamicArray[T]) Set(i int, v T) error {
	if i < 0 || i >= d.length {
		return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfBounds, i, d.length)
	}
	d.block.Clear(i)
	d.block.Set(i, v)

	return nil
}

// ShrinkToFit reclaims capacity when occupancy is low. Empty array: the
// block is released entirely, back to the unallocated state. Below the 1/4
// trigger and above the floor: capacity halves (clamped to Len()). Anything
// else — including a failed shrink allocation — is a no-op; shrink is an
// optimization, never a correctness event.
func (d *DynamicArray[T]) ShrinkToFit() {
	switch {
	case d.length == 0 && d.capacity > 0:
		d.allocator.Deallocate(d.block)
		d.block = alloc.Block[T]{}
		d.capacity = 0

	case d.length < d.capacity/ShrinkTrigger && d.capacity > MinShrinkCapacity:
		newCapacity := d.capacity / ShrinkFactor
		if newCapacity < d.length {
			newCapacity = d.length
		}
		block, err := d.allocator.Grow(d.block, d.length, newCapacity)
		if err != nil {
			return // keep the current block
		}
		d.block = block
		d.capacity = newCapacity
	}
}

// Append pushes each value in order. Implemented purely as repeated Push,
// so growth accounting stays uniform. On error the values already pushed
// remain.
func (d *DynamicArray[T]) Append(values ...T) error {
	for _, v := range values {
		if err := d.Push(v); err != nil {
			return err
		}
	}

	return nil
}

// Extend pushes every value produced by seq, in sequence order.
func (d *DynamicArray[T]) Extend(seq iter.Seq[T]) error {
	for v := range seq {
		if err := d.Push(v); err != nil {
			return err
		}
	}

	return nil
}

// Clear drops every element in ascending index order. Capacity and the
// block are retained.
func (d *DynamicArray[T]) Clear() {
	d.block.ClearRange(0, d.length)
	d.length = 0
}

// Release drops every element in ascending order, then returns the block to
// the allocator and resets to the unallocated state. Further Release calls
// are no-ops; the array remains usable and re-allocates on the next Push.
func (d *DynamicArray[T]) Release() {
	d.Clear()
	d.allocator.Deallocate(d.block)
	d.block = alloc.Block[T]{}
	d.capacity = 0
}

// Slice returns a read view of the live prefix [0, Len()), valid until the
// next mutation. Its capacity is pinned, so appends cannot reach the free
// region.
func (d *DynamicArray[T]) Slice() []T {
	return d.block.Slice(d.length)
}

// String renders the live elements as "[a, b, c]".
func (d *DynamicArray[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < d.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", d.block.At(i))
	}
	sb.WriteByte(']')

	return sb.String()
}
