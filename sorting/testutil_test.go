// SPDX-License-Identifier: MIT

package sorting_test

import (
	"math/rand"

	"github.com/katalvlaran/lvsort/sorting"
)

const (
	// seedDet fixes every random input so failures are reproducible.
	seedDet = int64(42)

	// randomRounds is the number of random inputs per property test.
	randomRounds = 200

	// randomMaxLen bounds the length of random inputs.
	randomMaxLen = 64
)

// Inputs shared by the scenario tests.
var (
	scenarioInput      = []int{38, 29, 14, 35, 22, 61, 35, 59, 36, 2}
	scenarioSorted     = []int{2, 14, 22, 29, 35, 35, 36, 38, 59, 61}
	scenarioNegInput   = []int{38, 29, 14, 35, 22, 61, 35, 59, 36, 2, -1, -12}
	scenarioNegSorted  = []int{-12, -1, 2, 14, 22, 29, 35, 35, 36, 38, 59, 61}
	countingNegInput   = []int{38, 29, 14, 35, 22, 61, 35, 59, 36, 2, -1, -10, -12}
	countingNegSorted  = []int{-12, -10, -1, 2, 14, 22, 29, 35, 35, 36, 38, 59, 61}
	radixScenarioInput = []int{21, 56, 88, 195, 354, 1, 35, 12, 6, 7, 15, 23}
	radixScenarioOut   = []int{1, 6, 7, 12, 15, 21, 23, 35, 56, 88, 195, 354}
)

// inPlaceSort is a comparison sort instantiated for int.
type inPlaceSort struct {
	name string
	fn   func([]int)
}

// comparisonSorts lists every in-place comparison sort.
func comparisonSorts() []inPlaceSort {
	return []inPlaceSort{
		{"bubble", sorting.Bubble[int]},
		{"selection", sorting.Selection[int]},
		{"insertion", sorting.Insertion[int]},
		{"shell", sorting.Shell[int]},
		{"quick", sorting.Quick[int]},
		{"heap", sorting.Heap[int]},
		{"merge", sorting.Merge[int]},
		{"merge-bottom-up", sorting.MergeBottomUp[int]},
	}
}

// randomInts returns n values drawn uniformly from [lo, hi].
func randomInts(rng *rand.Rand, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}

	return out
}

// clone returns an independent copy of s (nil stays distinguishable from empty).
func clone(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}
