// Package dynarray provides DynamicArray, a growable container built on the
// same alloc seam and invariants as fixedarray, plus a resize policy and a
// consuming iterator.
//
// What:
//
//   - DynamicArray[T] starts with no allocation at all; the first Push
//     bootstraps a 1-slot block, and every later growth doubles capacity
//     with a checked multiplication.
//   - ShrinkToFit reclaims space only below the 1/4 occupancy trigger
//     (halving, never below the live length or the minimum floor), so single
//     push/pop oscillation can never thrash grow against shrink.
//   - Drain moves the block and the remaining elements into an Iterator;
//     the drained array resets to the empty unallocated state, making a
//     double release of the block structurally impossible.
//   - Push reports an error only when growth itself fails (overflow or
//     allocator refusal), and then the array is left exactly as it was.
//
// Why:
//
//   - The canonical "build your own vector": amortized O(1) append from a
//     doubling policy, with every move and release explicit.
//   - Hysteresis between the grow trigger (100% full) and the shrink trigger
//     (<25% full) demands bulk removal before any shrink, never oscillation.
//
// Complexity:
//
//   - Push: O(1) amortized (each element moves O(log n) times across growths).
//   - Pop/Get/Ref/Set/Len/Cap: O(1).
//   - Grow/ShrinkToFit: O(Len()) moves.
//   - Clear/Release/Drain-Release: O(Len()).
//
// Options:
//
//   - WithAllocator: swap the alloc.Heap default for any alloc.Allocator,
//     e.g. alloc.Counting in tests.
//
// Errors:
//
//   - ErrIndexOutOfBounds: Set outside [0, Len()).
//   - alloc.ErrCapacityOverflow: doubling would exceed the int range.
//   - alloc.ErrAllocFailed: the allocator refused a grow or pre-allocation.
//
// Policy constants:
//
//   - GrowthFactor (2), ShrinkTrigger (4), ShrinkFactor (2),
//     MinShrinkCapacity (4) — named so alternate policies are test-visible,
//     not buried inline.
//
// See: fixedarray for the capacity-bounded counterpart.
package dynarray
