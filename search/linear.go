package search

// Linear scans s front to back for the first element equal to target.
// Works on unsorted data. Returns the index and true, or -1 and false.
//
// Complexity: O(n) comparisons, O(1) memory.
func Linear[T comparable](s Sequence[T], target T, opts ...Option) (int, bool, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, false, err
	}

	for i := 0; i < s.Len(); i++ {
		if at(s, i, &o) == target {
			return i, true, nil
		}
	}

	return -1, false, nil
}

// LinearFunc scans s front to back for the first element satisfying pred.
//
// Complexity: O(n), O(1) memory.
func LinearFunc[T any](s Sequence[T], pred func(T) bool, opts ...Option) (int, bool, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, false, err
	}
	if pred == nil {
		return -1, false, ErrOptionViolation
	}

	for i := 0; i < s.Len(); i++ {
		if pred(at(s, i, &o)) {
			return i, true, nil
		}
	}

	return -1, false, nil
}

// LinearAll collects the indices of every element equal to target, in
// ascending order. An empty result is nil.
//
// Complexity: O(n), O(k) memory for k matches.
func LinearAll[T comparable](s Sequence[T], target T, opts ...Option) ([]int, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return nil, err
	}

	var found []int
	for i := 0; i < s.Len(); i++ {
		if at(s, i, &o) == target {
			found = append(found, i)
		}
	}

	return found, nil
}

// ReverseLinear scans s back to front, returning the index of the last
// element equal to target.
//
// Complexity: O(n), O(1) memory.
func ReverseLinear[T comparable](s Sequence[T], target T, opts ...Option) (int, bool, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, false, err
	}

	for i := s.Len() - 1; i >= 0; i-- {
		if at(s, i, &o) == target {
			return i, true, nil
		}
	}

	return -1, false, nil
}

// Contains reports whether s holds target. A nil sequence contains nothing.
//
// Complexity: O(n).
func Contains[T comparable](s Sequence[T], target T) bool {
	_, found, err := Linear(s, target)

	return err == nil && found
}
