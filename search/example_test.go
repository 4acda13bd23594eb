package search_test

import (
	"fmt"

	"github.com/katalvlaran/arrkit/dynarray"
	"github.com/katalvlaran/arrkit/search"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBinary
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Search a sorted dynamic array for a present and an absent value.
//	The container plugs straight into the Sequence contract — the algorithm
//	never sees its internals.
//
// Complexity: O(log n).
func ExampleBinary() {
	d, _ := dynarray.FromSlice([]int{1, 3, 5, 7, 9, 11})

	idx, found, _ := search.Binary[int](d, 7)
	fmt.Println("7:", idx, found)

	idx, found, _ = search.Binary[int](d, 8)
	fmt.Println("8:", idx, found)
	// Output:
	// 7: 3 true
	// 8: -1 false
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleWithOnProbe
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Race linear against binary search on the same 64-element sorted data and
//	count probes with the OnProbe hook — the curriculum's complexity lesson
//	in four lines of output.
//
// Complexity: O(n) vs O(log n).
func ExampleWithOnProbe() {
	s := make(search.Slice[int], 64)
	for i := range s {
		s[i] = i
	}

	linearProbes, binaryProbes := 0, 0
	_, _, _ = search.Linear[int](s, 62, search.WithOnProbe(func(int) { linearProbes++ }))
	_, _, _ = search.Binary[int](s, 62, search.WithOnProbe(func(int) { binaryProbes++ }))

	fmt.Println("linear probes:", linearProbes)
	fmt.Println("binary probes:", binaryProbes)
	// Output:
	// linear probes: 63
	// binary probes: 6
}
