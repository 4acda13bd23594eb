// Package fixedarray provides Array, a capacity-bounded container backed by
// one block allocated at construction and never resized.
//
// What:
//
//   - Array[T] owns a single contiguous block sized for exactly Cap() elements.
//   - Elements live in the prefix [0, Len()); slots beyond it always hold the
//     zero value and are never readable through the API.
//   - Push reports ErrFull instead of growing; Pop, Get and Ref treat an
//     absent element as an ordinary (value, false) outcome; Set on a bad
//     index fails loudly with ErrIndexOutOfBounds.
//   - Release drops every element in ascending order, then returns the block
//     to the allocator exactly once.
//
// Why:
//
//   - Fixed buffers: bounded queues, scratch space, embedded-style pools.
//   - Teaching: the full push/pop/get/set discipline without a resize policy
//     in the way — dynarray adds growth on top of the same invariants.
//
// Complexity:
//
//   - New: O(capacity) (one allocation), Memory: O(capacity).
//   - Push/Pop/Get/Ref/Set/Len/Cap: O(1).
//   - Clear/Release: O(Len()).
//
// Options:
//
//   - WithAllocator: swap the alloc.Heap default for any alloc.Allocator,
//     e.g. alloc.Counting in tests.
//
// Errors:
//
//   - ErrFull: Push on a full array; the caller keeps the value.
//   - ErrIndexOutOfBounds: Set outside [0, Len()).
//   - alloc.ErrBadCapacity, alloc.ErrCapacityOverflow, alloc.ErrAllocFailed:
//     surfaced unchanged from construction.
//
// See: dynarray for the growable counterpart.
package fixedarray
