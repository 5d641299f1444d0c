// SPDX-License-Identifier: MIT

package sorting

// Counting returns the values of s in ascending order using counting sort.
// s itself is not modified.
//
// The minimum and maximum are found first; a frequency array of
// max-min+1 counters indexed by value-min is filled in one scan, and the
// output is produced by walking the counters in key order and writing each
// key (plus min) as many times as it was counted. Negative values are
// handled by the offset.
//
// The frequency array grows with max-min, not with len(s). Calling Counting
// on a few values spread over a huge range is the caller's responsibility,
// and max-min+1 must fit in an int (values spanning the whole int range
// cannot be counted; use Bucket or a comparison sort for those).
//
// Complexity: Time O(N + K), Memory O(N + K), K = max-min+1.
func Counting(s []int) []int {
	out := make([]int, len(s))
	if len(s) == 0 {
		return out
	}

	lo, hi := minMax(s)
	counts := make([]int, hi-lo+1)
	for _, v := range s {
		counts[v-lo]++
	}

	idx := 0
	for key, c := range counts {
		for ; c > 0; c-- {
			out[idx] = key + lo
			idx++
		}
	}

	return out
}

// minMax returns the smallest and largest value of a non-empty s.
func minMax(s []int) (lo, hi int) {
	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
