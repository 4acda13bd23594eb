package alloc

// heapAllocator allocates blocks directly from the Go heap. Deallocate drops
// the handle's storage reference; reclamation is the garbage collector's job,
// but the pairing discipline is still enforced so counting decorators (and
// alternative allocators with real frees) observe correct lifetimes.
type heapAllocator[T any] struct{}

// Heap returns the default heap-backed Allocator for T.
func Heap[T any]() Allocator[T] { return heapAllocator[T]{} }

// Allocate satisfies the Allocator interface.
func (heapAllocator[T]) Allocate(capacity int) (Block[T], error) {
	if _, err := LayoutOf[T](capacity); err != nil {
		return Block[T]{}, err
	}
	if capacity == 0 {
		return Block[T]{}, nil
	}

	return Block[T]{data: make([]T, capacity)}, nil
}

// Deallocate satisfies the Allocator interface.
func (heapAllocator[T]) Deallocate(b Block[T]) {
	// Nothing to hand back: once no handle references the storage the GC
	// reclaims it.
}

// Grow satisfies the Allocator interface.
func (h heapAllocator[T]) Grow(old Block[T], length, newCapacity int) (Block[T], error) {
	return growThrough[T](h, old, length, newCapacity)
}

// growThrough implements the grow protocol in terms of a's Allocate and
// Deallocate, preserving the ordering guarantee: the old block is released
// only after the replacement holds every element.
func growThrough[T any](a Allocator[T], old Block[T], length, newCapacity int) (Block[T], error) {
	if length > newCapacity {
		return Block[T]{}, ErrBadCapacity
	}

	replacement, err := a.Allocate(newCapacity)
	if err != nil {
		return Block[T]{}, err
	}
	for i := 0; i < length; i++ {
		replacement.Set(i, old.At(i))
	}
	// Moved out: drop the originals so the old block owns nothing when freed.
	old.ClearRange(0, length)
	a.Deallocate(old)

	return replacement, nil
}
