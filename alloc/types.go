// Package alloc defines the Block, Layout, and Allocator types plus the
// sentinel errors shared by every arrkit container.
package alloc

import (
	"errors"
	"math"
	"unsafe"
)

// Sentinel errors for allocation operations.
var (
	// ErrBadCapacity indicates a negative capacity request.
	ErrBadCapacity = errors.New("alloc: capacity must be non-negative")
	// ErrCapacityOverflow indicates capacity × element size (or a doubling of
	// capacity) would exceed the platform's int range.
	ErrCapacityOverflow = errors.New("alloc: capacity overflows addressable size")
	// ErrAllocFailed indicates the underlying allocator could not satisfy
	// a size request.
	ErrAllocFailed = errors.New("alloc: allocation failed")
)

// Layout describes the byte footprint of a block holding Capacity elements:
// the per-element Size and Align as reported by the compiler, and the checked
// total. Deallocation must present the same Layout used at allocation time;
// sizing a release by a container's length instead of its capacity is exactly
// the mismatch this type exists to prevent.
type Layout struct {
	Size     uintptr // size of one element in bytes
	Align    uintptr // alignment of one element in bytes
	Capacity int     // number of elements the block holds
}

// LayoutOf computes the Layout for capacity elements of T.
// Returns ErrBadCapacity for negative capacity and ErrCapacityOverflow when
// capacity × sizeof(T) cannot be represented as an int.
func LayoutOf[T any](capacity int) (Layout, error) {
	var zero T
	size := unsafe.Sizeof(zero)
	align := unsafe.Alignof(zero)

	if capacity < 0 {
		return Layout{}, ErrBadCapacity
	}
	// Zero-sized elements occupy no bytes at any capacity.
	if size > 0 && uintptr(capacity) > math.MaxInt/size {
		return Layout{}, ErrCapacityOverflow
	}

	return Layout{Size: size, Align: align, Capacity: capacity}, nil
}

// Bytes returns the total byte footprint of the layout.
func (l Layout) Bytes() uintptr {
	return l.Size * uintptr(l.Capacity)
}

// Allocator is the seam containers acquire their backing blocks through.
//
// The pairing discipline: every non-null block produced by Allocate or Grow
// must be passed to Deallocate exactly once. Grow performs an internal
// Allocate/Deallocate pair itself; callers hand it the old block and own only
// the returned one.
type Allocator[T any] interface {
	// Allocate returns a zeroed block sized for exactly capacity elements.
	// capacity 0 yields the null block without touching the heap.
	Allocate(capacity int) (Block[T], error)

	// Deallocate returns a block to the allocator. Deallocating the null
	// block is a no-op. The block must not be used afterwards.
	Deallocate(b Block[T])

	// Grow allocates a replacement block for newCapacity elements, moves the
	// first length elements of old into it in order, and releases old — but
	// only after the replacement is valid and populated, so the data is never
	// in neither block. On error, old is untouched and still owned by the
	// caller. newCapacity must be ≥ length.
	Grow(old Block[T], length, newCapacity int) (Block[T], error)
}
