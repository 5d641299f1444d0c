// SPDX-License-Identifier: MIT

package sorting

import "golang.org/x/exp/constraints"

// Merge sorts s in ascending order with top-down merge sort: the slice is
// split at its midpoint, both halves are sorted recursively, and the sorted
// halves are merged through a scratch buffer that is copied back over the
// merged range.
//
// One scratch buffer of len(s) is allocated per call; each merge uses the
// prefix of it that matches the merged range. The buffer does not outlive
// the call.
//
// Complexity: Time O(N log N), Memory O(N) + O(log N) stack. Stable.
func Merge[E constraints.Ordered](s []E) {
	if len(s) < 2 {
		return
	}
	buf := make([]E, len(s))
	mergeSort(s, 0, len(s), buf)
}

// MergeBottomUp sorts s in ascending order without recursion. Runs of width
// 1, 2, 4, … are merged pairwise across the whole slice until one run
// covers it. A trailing run without a partner is left as it is for that
// round. The output is identical to Merge.
//
// Complexity: Time O(N log N), Memory O(N). Stable.
func MergeBottomUp[E constraints.Ordered](s []E) {
	n := len(s)
	if n < 2 {
		return
	}
	buf := make([]E, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n-width; lo += 2 * width {
			mid := lo + width
			hi := min(lo+2*width, n)
			mergeRuns(s, lo, mid, hi, buf)
		}
	}
}

// mergeSort sorts the half-open range s[lo:hi].
func mergeSort[E constraints.Ordered](s []E, lo, hi int, buf []E) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(s, lo, mid, buf)
	mergeSort(s, mid, hi, buf)
	mergeRuns(s, lo, mid, hi, buf)
}

// mergeRuns merges the sorted runs s[lo:mid] and s[mid:hi] into
// buf[:hi-lo] and copies the result back to s[lo:hi]. On ties the element of
// the left run is taken first, which keeps the merge stable.
func mergeRuns[E constraints.Ordered](s []E, lo, mid, hi int, buf []E) {
	tmp := buf[:hi-lo]
	i, j, k := lo, mid, 0
	for i < mid && j < hi {
		if s[i] <= s[j] {
			tmp[k] = s[i]
			i++
		} else {
			tmp[k] = s[j]
			j++
		}
		k++
	}
	// drain whichever run is left; at most one of these copies anything
	k += copy(tmp[k:], s[i:mid])
	copy(tmp[k:], s[j:hi])
	copy(s[lo:hi], tmp)
}
