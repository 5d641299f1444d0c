// SPDX-License-Identifier: MIT

package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/sorting"
)

func TestSort_EveryAlgorithm(t *testing.T) {
	for _, a := range sorting.Algorithms() {
		t.Run(string(a), func(t *testing.T) {
			out, err := sorting.Sort(a, clone(scenarioInput))
			require.NoError(t, err)
			assert.Equal(t, scenarioSorted, out)
		})
	}
}

// TestSort_NegativeInput runs the negative scenario through every algorithm
// that accepts signed values and checks that RadixSort reports it.
func TestSort_NegativeInput(t *testing.T) {
	for _, a := range sorting.Algorithms() {
		t.Run(string(a), func(t *testing.T) {
			out, err := sorting.Sort(a, clone(scenarioNegInput))
			if a == sorting.RadixSort {
				assert.ErrorIs(t, err, sorting.ErrNegativeValue)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, scenarioNegSorted, out)
		})
	}
}

func TestSort_InPlaceReturnsSameSlice(t *testing.T) {
	s := clone(scenarioInput)
	out, err := sorting.Sort(sorting.HeapSort, s)
	require.NoError(t, err)
	assert.Equal(t, scenarioSorted, s)
	assert.Same(t, &s[0], &out[0])

	s = clone(scenarioInput)
	out, err = sorting.Sort(sorting.CountingSort, s)
	require.NoError(t, err)
	assert.Equal(t, scenarioInput, s, "counting sort leaves its input alone")
	assert.Equal(t, scenarioSorted, out)
}

func TestSort_Options(t *testing.T) {
	out, err := sorting.Sort(sorting.BucketSort, clone(scenarioInput), sorting.WithBucketWidth(3))
	require.NoError(t, err)
	assert.Equal(t, scenarioSorted, out)

	out, err = sorting.Sort(sorting.RadixSort, []int{195, 21, 354, 12}, sorting.WithRadixDigits(1))
	require.NoError(t, err)
	assert.Equal(t, []int{21, 12, 354, 195}, out)
}

func TestSort_InvalidOptions(t *testing.T) {
	_, err := sorting.Sort(sorting.BucketSort, clone(scenarioInput), sorting.WithBucketWidth(0))
	assert.ErrorIs(t, err, sorting.ErrOptionViolation)

	_, err = sorting.Sort(sorting.RadixSort, clone(scenarioInput), sorting.WithRadixDigits(-1))
	assert.ErrorIs(t, err, sorting.ErrOptionViolation)
}

func TestSort_UnknownAlgorithm(t *testing.T) {
	s := clone(scenarioInput)
	out, err := sorting.Sort(sorting.Algorithm("bogo"), s)
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
	assert.Nil(t, out)
	assert.Equal(t, scenarioInput, s)
}

func TestParseAlgorithm(t *testing.T) {
	a, err := sorting.ParseAlgorithm("merge-bottom-up")
	require.NoError(t, err)
	assert.Equal(t, sorting.MergeBottomUpSort, a)

	_, err = sorting.ParseAlgorithm("Quick")
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestAlgorithms(t *testing.T) {
	all := sorting.Algorithms()
	assert.Len(t, all, 11)
	assert.Equal(t, sorting.BubbleSort, all[0])

	// callers get a copy
	all[0] = "changed"
	assert.Equal(t, sorting.BubbleSort, sorting.Algorithms()[0])

	assert.True(t, sorting.QuickSort.Comparison())
	assert.False(t, sorting.RadixSort.Comparison())
}
