package dynarray

import (
	"iter"

	"github.com/katalvlaran/arrkit/alloc"
)

// Iterator is a one-shot, forward-only consuming view over the elements a
// DynamicArray held when Drain was called. Ownership of the block moves with
// it: the iterator alone drops unconsumed elements and returns the block.
type Iterator[T any] struct {
	block     alloc.Block[T]
	length    int
	index     int
	allocator alloc.Allocator[T]
	released  bool
}

// Drain consumes the array into an Iterator. The array resets to the empty
// unallocated state immediately, so it stays usable but can never touch —
// let alone release — the block again. Ownership moves exactly once.
func (d *DynamicArray[T]) Drain() *Iterator[T] {
	it := &Iterator[T]{
		block:     d.block,
		length:    d.length,
		allocator: d.allocator,
	}
	d.block = alloc.Block[T]{}
	d.capacity = 0
	d.length = 0

	return it
}

// Next yields the next element in index order, exactly once each, dropping
// its slot as it goes. Returns false once every element has been yielded or
// the iterator has been released.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T
	if it.released || it.index >= it.length {
		return zero, false
	}
	v := it.block.At(it.index)
	it.block.Clear(it.index)
	it.index++

	return v, true
}

// Remaining returns the number of elements not yet yielded.
func (it *Iterator[T]) Remaining() int {
	if it.released {
		return 0
	}

	return it.length - it.index
}

// Release drops every unyielded element in ascending order and returns the
// block to the allocator. Idempotent: the block goes back exactly once.
// Iteration after Release yields nothing.
func (it *Iterator[T]) Release() {
	if it.released {
		return
	}
	it.block.ClearRange(it.index, it.length)
	it.index = it.length
	it.allocator.Deallocate(it.block)
	it.block = alloc.Block[T]{}
	it.released = true
}

// Collect yields all remaining elements into a fresh slice and releases the
// iterator.
func (it *Iterator[T]) Collect() []T {
	out := make([]T, 0, it.Remaining())
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	it.Release()

	return out
}

// Seq adapts the iterator to a range-over-func sequence. Elements not
// consumed by the loop stay in the iterator; call Release (or Collect) to
// finish it.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
