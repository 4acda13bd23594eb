package search_test

import (
	"testing"

	"github.com/katalvlaran/arrkit/dynarray"
	"github.com/katalvlaran/arrkit/fixedarray"
	"github.com/katalvlaran/arrkit/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinear_FirstOccurrence verifies the scan returns the first match on
// unsorted data.
func TestLinear_FirstOccurrence(t *testing.T) {
	s := search.Slice[int]{5, 2, 8, 2, 9}

	idx, found, err := search.Linear[int](s, 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, idx)

	idx, found, err = search.Linear[int](s, 3)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, -1, idx)
}

// TestLinear_NilSequence verifies the nil-input sentinel.
func TestLinear_NilSequence(t *testing.T) {
	_, _, err := search.Linear[int](nil, 1)
	assert.ErrorIs(t, err, search.ErrNilSequence)
}

// TestLinear_OverContainers verifies both arrkit containers satisfy the
// Sequence contract.
func TestLinear_OverContainers(t *testing.T) {
	fixed, err := fixedarray.FromSlice([]string{"x", "y", "z"}, 5)
	require.NoError(t, err)
	idx, found, err := search.Linear[string](fixed, "y")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, idx)

	dyn, err := dynarray.FromSlice([]string{"x", "y", "z"})
	require.NoError(t, err)
	idx, found, err = search.Linear[string](dyn, "z")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, idx)
}

// TestLinearFunc_Predicate verifies predicate search and the nil-predicate
// violation.
func TestLinearFunc_Predicate(t *testing.T) {
	s := search.Slice[int]{1, 5, 3, 8, 2}

	idx, found, err := search.LinearFunc[int](s, func(v int) bool { return v > 5 })
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, idx)

	_, _, err = search.LinearFunc[int](s, nil)
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestLinearAll_CollectsAscending verifies every occurrence is reported in
// index order and a miss yields nil.
func TestLinearAll_CollectsAscending(t *testing.T) {
	s := search.Slice[int]{1, 2, 3, 2, 4, 2}

	all, err := search.LinearAll[int](s, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, all)

	all, err = search.LinearAll[int](s, 9)
	require.NoError(t, err)
	assert.Nil(t, all)
}

// TestReverseLinear_LastOccurrence verifies the back-to-front scan.
func TestReverseLinear_LastOccurrence(t *testing.T) {
	s := search.Slice[int]{1, 2, 3, 2, 4}

	idx, found, err := search.ReverseLinear[int](s, 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, idx)
}

// TestContains_Membership verifies membership including the nil sequence.
func TestContains_Membership(t *testing.T) {
	s := search.Slice[int]{1, 2, 3}
	assert.True(t, search.Contains[int](s, 3))
	assert.False(t, search.Contains[int](s, 6))
	assert.False(t, search.Contains[int](nil, 1))
}

// TestLinear_OnProbeCountsReads verifies the hook observes every probed
// index in scan order.
func TestLinear_OnProbeCountsReads(t *testing.T) {
	s := search.Slice[int]{7, 8, 9}
	var probes []int

	_, found, err := search.Linear[int](s, 9, search.WithOnProbe(func(i int) {
		probes = append(probes, i)
	}))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{0, 1, 2}, probes)
}
