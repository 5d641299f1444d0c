// SPDX-License-Identifier: MIT

package sorting

import "golang.org/x/exp/constraints"

// Selection sorts s in ascending order. Each of the N-1 passes scans the
// unsorted suffix for its minimum and swaps it to the front of the suffix.
//
// Complexity: Time O(N²) on every input, at most N-1 swaps. Memory O(1). Not stable.
func Selection[E constraints.Ordered](s []E) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if s[j] < s[minIdx] {
				minIdx = j
			}
		}
		s[i], s[minIdx] = s[minIdx], s[i]
	}
}
