// SPDX-License-Identifier: MIT

package sorting

import "golang.org/x/exp/constraints"

// Bubble sorts s in ascending order by repeatedly swapping adjacent
// out-of-order pairs. After pass i the i largest elements sit at the tail,
// so each pass stops one position earlier than the previous one.
// There is no early exit: every input costs N-1 passes.
//
// Complexity: Time O(N²), Memory O(1). Stable.
func Bubble[E constraints.Ordered](s []E) {
	n := len(s)
	for pass := 0; pass < n-1; pass++ {
		for j := 0; j < n-1-pass; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}
}
