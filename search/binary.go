package search

import "cmp"

// Binary bisects s, which the caller guarantees is sorted ascending, for an
// element equal to target. Which duplicate it lands on is unspecified; use
// BinaryFirst or BinaryLast when that matters.
//
// Complexity: O(log n) comparisons, O(1) memory.
func Binary[T cmp.Ordered](s Sequence[T], target T, opts ...Option) (int, bool, error) {
	return BinaryFunc(s, func(v T) int { return cmp.Compare(v, target) }, opts...)
}

// BinaryFunc bisects s using a custom comparator: compare(v) reports v's
// ordering relative to the target (negative: before, zero: match, positive:
// after). Useful when searching by a key differing from the element type.
//
// Complexity: O(log n), O(1) memory.
func BinaryFunc[T any](s Sequence[T], compare func(T) int, opts ...Option) (int, bool, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, false, err
	}
	if compare == nil {
		return -1, false, ErrOptionViolation
	}

	lo, hi := 0, s.Len()-1
	for lo <= hi {
		mid := lo + (hi-lo)/2 // midpoint without overflow
		switch c := compare(at(s, mid, &o)); {
		case c == 0:
			return mid, true, nil
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1, false, nil
}

// BinaryFirst returns the leftmost index holding target in sorted s —
// the duplicate-aware variant of Binary.
//
// Complexity: O(log n), O(1) memory.
func BinaryFirst[T cmp.Ordered](s Sequence[T], target T, opts ...Option) (int, bool, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, false, err
	}

	result, found := -1, false
	lo, hi := 0, s.Len()-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch v := at(s, mid, &o); {
		case v == target:
			result, found = mid, true
			hi = mid - 1 // keep looking left
		case v < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return result, found, nil
}

// BinaryLast returns the rightmost index holding target in sorted s.
//
// Complexity: O(log n), O(1) memory.
func BinaryLast[T cmp.Ordered](s Sequence[T], target T, opts ...Option) (int, bool, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, false, err
	}

	result, found := -1, false
	lo, hi := 0, s.Len()-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch v := at(s, mid, &o); {
		case v == target:
			result, found = mid, true
			lo = mid + 1 // keep looking right
		case v < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return result, found, nil
}

// InsertionPoint returns the index where target should be inserted to keep
// sorted s sorted — the index of the first occurrence when target is already
// present, s.Len() when it is greater than every element.
//
// Complexity: O(log n), O(1) memory.
func InsertionPoint[T cmp.Ordered](s Sequence[T], target T, opts ...Option) (int, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, err
	}

	lo, hi := 0, s.Len()
	for lo < hi {
		mid := lo + (hi-lo)/2
		if at(s, mid, &o) < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo, nil
}
