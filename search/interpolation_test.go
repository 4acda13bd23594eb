package search_test

import (
	"testing"

	"github.com/katalvlaran/arrkit/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInterpolation_UniformData verifies hits and misses on uniformly
// distributed sorted values, interpolation's best case.
func TestInterpolation_UniformData(t *testing.T) {
	s := make(search.Slice[int], 50)
	for i := range s {
		s[i] = 10 * i
	}

	idx, found, err := search.Interpolation[int](s, 230)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 23, idx)

	_, found, err = search.Interpolation[int](s, 231)
	require.NoError(t, err)
	assert.False(t, found)
}

// TestInterpolation_OutOfRange verifies targets outside the value range are
// rejected without probing inward.
func TestInterpolation_OutOfRange(t *testing.T) {
	s := search.Slice[int]{10, 20, 30}

	_, found, err := search.Interpolation[int](s, 5)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = search.Interpolation[int](s, 35)
	require.NoError(t, err)
	assert.False(t, found)
}

// TestInterpolation_Edges verifies the empty sequence, a single element,
// and an all-equal sequence.
func TestInterpolation_Edges(t *testing.T) {
	_, found, err := search.Interpolation[int](search.Slice[int]{}, 1)
	require.NoError(t, err)
	assert.False(t, found)

	idx, found, err := search.Interpolation[int](search.Slice[int]{7}, 7)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 0, idx)

	idx, found, err = search.Interpolation[int](search.Slice[int]{5, 5, 5}, 5)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 0, idx, "equal endpoints probe the low edge")
}

// TestInterpolation_UnsignedElements verifies uint elements cannot
// underflow during the probe estimate.
func TestInterpolation_UnsignedElements(t *testing.T) {
	s := search.Slice[uint]{2, 4, 8, 16, 32}

	idx, found, err := search.Interpolation[uint](s, 16)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, idx)

	_, found, err = search.Interpolation[uint](s, 5)
	require.NoError(t, err)
	assert.False(t, found)
}

// TestInterpolation_Floats verifies float64 elements.
func TestInterpolation_Floats(t *testing.T) {
	s := search.Slice[float64]{0.5, 1.5, 2.5, 3.5}

	idx, found, err := search.Interpolation[float64](s, 2.5)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, idx)
}

// TestInterpolation_AgreesWithBinary cross-checks interpolation against
// binary search on skewed (non-uniform) sorted data.
func TestInterpolation_AgreesWithBinary(t *testing.T) {
	s := make(search.Slice[int], 64)
	v := 1
	for i := range s {
		s[i] = v
		v += i*i + 1 // strongly non-uniform gaps
	}

	for i := range s {
		idx, found, err := search.Interpolation[int](s, s[i])
		require.NoError(t, err)
		require.True(t, found, "value %d", s[i])
		require.Equal(t, i, idx)

		_, found, err = search.Interpolation[int](s, s[i]+1)
		require.NoError(t, err)
		if i+1 < len(s) && s[i+1] == s[i]+1 {
			require.True(t, found)
		} else {
			require.False(t, found, "absent value %d", s[i]+1)
		}
	}
}
