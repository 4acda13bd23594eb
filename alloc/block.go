package alloc

// Block is an owning handle to one contiguous region of memory sized for
// exactly Cap() elements of T. A Block never reallocates; growth is a whole
// new Block obtained from an Allocator.
//
// Slots hold either a live element or the zero value. Clearing a slot is the
// garbage-collected analogue of dropping the element: any memory the old
// value referenced becomes reclaimable.
type Block[T any] struct {
	data []T // full-capacity backing storage; nil iff the block is null
}

// Null reports whether b is the null block (capacity 0, no storage).
func (b Block[T]) Null() bool { return b.data == nil }

// Cap returns the number of element slots in the block.
func (b Block[T]) Cap() int { return len(b.data) }

// At returns the element stored in slot i. i must be < Cap().
func (b Block[T]) At(i int) T { return b.data[i] }

// Ref returns a pointer to slot i for in-place mutation. i must be < Cap().
func (b Block[T]) Ref(i int) *T { return &b.data[i] }

// Set writes v into slot i. i must be < Cap().
func (b Block[T]) Set(i int, v T) { b.data[i] = v }

// Clear drops the element in slot i by overwriting it with the zero value.
func (b Block[T]) Clear(i int) {
	var zero T
	b.data[i] = zero
}

// ClearRange drops every element in slots [from, to) in ascending order.
func (b Block[T]) ClearRange(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		b.data[i] = zero
	}
}

// Slice returns a view of the first n slots with capacity pinned to n, so an
// append through the view can never write into the block's free region.
func (b Block[T]) Slice(n int) []T {
	return b.data[:n:n]
}
