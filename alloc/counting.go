package alloc

import "fmt"

// CountingAllocator decorates another Allocator with pairing counters and
// optional injected failure. It is the instrument behind the lifetime tests:
// a container that allocates N blocks over its life must deallocate exactly N.
//
// Null blocks never count; they represent the absence of an allocation.
type CountingAllocator[T any] struct {
	inner Allocator[T]

	allocs   int
	deallocs int
	grows    int

	failAfter int // remaining successful allocations before failure; -1 disables
}

// Counting wraps inner with a fresh CountingAllocator. Counting(nil) wraps
// the heap allocator.
func Counting[T any](inner Allocator[T]) *CountingAllocator[T] {
	if inner == nil {
		inner = Heap[T]()
	}

	return &CountingAllocator[T]{inner: inner, failAfter: -1}
}

// FailAfter makes the next n Allocate calls succeed and every later one fail
// with ErrAllocFailed. Pass a negative n to disable injected failure.
func (c *CountingAllocator[T]) FailAfter(n int) { c.failAfter = n }

// Allocs returns the number of non-null blocks handed out so far.
func (c *CountingAllocator[T]) Allocs() int { return c.allocs }

// Deallocs returns the number of non-null blocks returned so far.
func (c *CountingAllocator[T]) Deallocs() int { return c.deallocs }

// Grows returns the number of completed Grow operations.
func (c *CountingAllocator[T]) Grows() int { return c.grows }

// Live returns the number of blocks currently outstanding.
func (c *CountingAllocator[T]) Live() int { return c.allocs - c.deallocs }

// Allocate satisfies the Allocator interface.
func (c *CountingAllocator[T]) Allocate(capacity int) (Block[T], error) {
	if capacity > 0 && c.failAfter == 0 {
		return Block[T]{}, fmt.Errorf("%w: injected failure for %d elements", ErrAllocFailed, capacity)
	}

	b, err := c.inner.Allocate(capacity)
	if err != nil {
		return Block[T]{}, err
	}
	if !b.Null() {
		c.allocs++
		if c.failAfter > 0 {
			c.failAfter--
		}
	}

	return b, nil
}

// Deallocate satisfies the Allocator interface.
func (c *CountingAllocator[T]) Deallocate(b Block[T]) {
	if b.Null() {
		return
	}
	c.deallocs++
	c.inner.Deallocate(b)
}

// Grow satisfies the Allocator interface. The internal Allocate/Deallocate
// pair is counted, so Live stays truthful across growth.
func (c *CountingAllocator[T]) Grow(old Block[T], length, newCapacity int) (Block[T], error) {
	b, err := growThrough[T](c, old, length, newCapacity)
	if err != nil {
		return Block[T]{}, err
	}
	c.grows++

	return b, nil
}
