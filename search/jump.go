package search

import (
	"cmp"
	"math"
)

// Jump searches sorted s in two phases: stride through it in jumps until a
// block that could hold target is found, then scan that block linearly.
// The default stride is ⌈√n⌉, the optimum for uniform access cost; override
// it with WithJumpSize.
//
// Complexity: O(√n) comparisons, O(1) memory.
func Jump[T cmp.Ordered](s Sequence[T], target T, opts ...Option) (int, bool, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, false, err
	}

	idx, found := jump(s, target, &o)

	return idx, found, nil
}

// JumpFirst returns the leftmost index holding target in sorted s: a jump
// search, then a walk left across duplicates.
//
// Complexity: O(√n + k) for k duplicates, O(1) memory.
func JumpFirst[T cmp.Ordered](s Sequence[T], target T, opts ...Option) (int, bool, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, false, err
	}

	idx, found := jump(s, target, &o)
	for found && idx > 0 && at(s, idx-1, &o) == target {
		idx--
	}

	return idx, found, nil
}

// JumpLast returns the rightmost index holding target in sorted s: a jump
// search, then a walk right across duplicates.
//
// Complexity: O(√n + k) for k duplicates, O(1) memory.
func JumpLast[T cmp.Ordered](s Sequence[T], target T, opts ...Option) (int, bool, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, false, err
	}

	idx, found := jump(s, target, &o)
	for found && idx < s.Len()-1 && at(s, idx+1, &o) == target {
		idx++
	}

	return idx, found, nil
}

// jump is the shared two-phase core.
func jump[T cmp.Ordered](s Sequence[T], target T, o *Options) (int, bool) {
	n := s.Len()
	if n == 0 {
		return -1, false
	}

	step := o.JumpSize
	if step == 0 {
		step = optimalJumpSize(n)
	}

	// Jump phase: advance block by block while the block's last element is
	// still below target.
	prev := 0
	curr := min(step, n) - 1
	for at(s, curr, o) < target {
		prev = curr + 1
		if prev >= n {
			return -1, false // ran off the end, every element is below target
		}
		curr = min(curr+step, n-1)
	}

	// Linear phase: scan the identified block [prev, curr].
	for i := prev; i <= curr; i++ {
		switch v := at(s, i, o); {
		case v == target:
			return i, true
		case v > target:
			return -1, false // sorted data, target cannot appear later
		}
	}

	return -1, false
}

// optimalJumpSize returns ⌈√n⌉, clamped to at least 1.
func optimalJumpSize(n int) int {
	step := int(math.Ceil(math.Sqrt(float64(n))))
	if step < 1 {
		step = 1
	}

	return step
}
