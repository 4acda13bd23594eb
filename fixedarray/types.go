// Package fixedarray defines the Array type, its construction options, and
// sentinel errors.
package fixedarray

import (
	"errors"

	"github.com/katalvlaran/arrkit/alloc"
)

// Sentinel errors for Array operations.
var (
	// ErrFull indicates Push was called with Len() == Cap(); the array is
	// unchanged and the caller still owns the value. Expected and
	// recoverable, not a fault.
	ErrFull = errors.New("fixedarray: capacity exhausted")
	// ErrIndexOutOfBounds indicates Set was called outside [0, Len()).
	// Unlike an absent Get, a misplaced write is a caller bug and fails loudly.
	ErrIndexOutOfBounds = errors.New("fixedarray: index out of bounds")
)

// Option configures Array construction via functional arguments.
type Option[T any] func(*config[T])

// config holds construction parameters resolved from Options.
type config[T any] struct {
	allocator alloc.Allocator[T]
}

// defaultConfig returns the construction defaults: heap-backed allocation.
func defaultConfig[T any]() config[T] {
	return config[T]{allocator: alloc.Heap[T]()}
}

// WithAllocator sets the allocator backing the array's block. A nil
// allocator is ignored and the default kept.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(c *config[T]) {
		if a != nil {
			c.allocator = a
		}
	}
}
