// Package alloc is the single seam through which every arrkit container
// acquires, grows, and releases its backing memory.
//
// What:
//
//   - Layout computes the byte footprint of "capacity elements of T" with a
//     checked multiplication, so absurd capacities fail loudly, never wrap.
//   - Block[T] is an owning handle to one contiguous region sized for exactly
//     Cap() elements; slot operations (At/Ref/Set/Clear) never reallocate.
//   - Allocator[T] abstracts Allocate/Deallocate/Grow so containers stay
//     oblivious to where blocks come from.
//   - Heap is the production allocator; Counting decorates any allocator with
//     pairing counters and injectable failure for tests.
//
// Why:
//
//   - Containers built on one small seam keep their unsafe surface tiny and
//     independently testable.
//   - Grow replaces a block without a torn window: the old block is released
//     only after the new one is valid and fully populated.
//   - Counting proves the discipline: every block acquired exactly once,
//     released exactly once, never both owners at a time.
//
// Complexity:
//
//   - Allocate/Deallocate: O(capacity) worst case (zeroing), Memory: O(capacity).
//   - Grow: O(length) moves, Memory: O(newCapacity).
//
// Errors:
//
//   - ErrBadCapacity: negative capacity requested.
//   - ErrCapacityOverflow: capacity × element size exceeds the int range.
//   - ErrAllocFailed: the underlying allocator could not satisfy the request.
//
// See: fixedarray and dynarray for the containers built on this seam.
package alloc
