// Package dynarray defines the DynamicArray construction options, resize
// policy constants, and sentinel errors.
package dynarray

import (
	"errors"

	"github.com/katalvlaran/arrkit/alloc"
)

// Sentinel errors for DynamicArray operations.
var (
	// ErrIndexOutOfBounds indicates Set was called outside [0, Len()).
	// Unlike an absent Get, a misplaced write is a caller bug and fails loudly.
	ErrIndexOutOfBounds = errors.New("dynarray: index out of bounds")
)

// Resize policy constants. Growth and shrink never share a threshold: the
// wide band between "grow at 100% full" and "shrink below 25% full" is what
// prevents thrashing under single push/pop oscillation.
const (
	// GrowthFactor multiplies capacity on every growth after bootstrap.
	GrowthFactor = 2
	// bootstrapCapacity is the first allocation, since doubling zero goes nowhere.
	bootstrapCapacity = 1
	// ShrinkTrigger divides capacity to form the shrink threshold:
	// ShrinkToFit acts only when Len() < Cap()/ShrinkTrigger.
	ShrinkTrigger = 4
	// ShrinkFactor divides capacity on shrink (halving, not snapping to Len,
	// keeps headroom for the next pushes).
	ShrinkFactor = 2
	// MinShrinkCapacity is the floor below which ShrinkToFit never halves a
	// non-empty array.
	MinShrinkCapacity = 4
)

// Option configures DynamicArray construction via functional arguments.
type Option[T any] func(*config[T])

// config holds construction parameters resolved from Options.
type config[T any] struct {
	allocator alloc.Allocator[T]
}

// defaultConfig returns the construction defaults: heap-backed allocation.
func defaultConfig[T any]() config[T] {
	return config[T]{allocator: alloc.Heap[T]()}
}

// WithAllocator sets the allocator backing the array's blocks. A nil
// allocator is ignored and the default kept.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(c *config[T]) {
		if a != nil {
			c.allocator = a
		}
	}
}
