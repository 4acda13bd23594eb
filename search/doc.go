// Package search provides the classic searching algorithms — linear, binary,
// jump, and interpolation — over any indexed sequence, including the arrkit
// containers.
//
// What:
//
//   - Sequence[T] is the minimal contract: a length and an O(1) indexed read.
//     fixedarray.Array, dynarray.DynamicArray, and the Slice adapter all
//     satisfy it.
//   - Linear scans unsorted data; LinearFunc, LinearAll, ReverseLinear and
//     Contains cover the predicate, all-occurrences, last-occurrence and
//     membership variants.
//   - Binary bisects sorted data with an overflow-safe midpoint; BinaryFirst,
//     BinaryLast and InsertionPoint handle duplicates and ordered insertion.
//   - Jump probes sorted data in √n strides, then scans one block.
//   - Interpolation estimates the probe position from the value distribution
//     of sorted numeric data.
//
// Why:
//
//   - The curriculum's consumers of the array contract: each algorithm needs
//     only Len and Get, never the containers' internals.
//   - The OnProbe hook turns every function into a teaching instrument —
//     count probes, trace them, compare algorithms on the same data.
//
// Complexity:
//
//   - Linear family: O(n) comparisons, Memory: O(1) (O(k) for LinearAll).
//   - Binary family: O(log n), Memory: O(1).
//   - Jump family: O(√n), Memory: O(1).
//   - Interpolation: O(log log n) on uniform data, O(n) worst case, Memory: O(1).
//
// Options:
//
//   - WithOnProbe: observation hook invoked with every probed index.
//   - WithJumpSize: manual jump stride (default ⌈√n⌉).
//
// Errors:
//
//   - ErrNilSequence: a nil Sequence was supplied.
//   - ErrOptionViolation: an invalid Option (e.g. non-positive jump size).
//
// Sortedness is a caller-held precondition for the binary, jump, and
// interpolation families; it is not checked here.
package search
