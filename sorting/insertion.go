// SPDX-License-Identifier: MIT

package sorting

import "golang.org/x/exp/constraints"

// Insertion sorts s in ascending order. For every index from 1 to N-1 the
// element is lifted out, all strictly greater predecessors are shifted one
// slot right, and the element is dropped into the gap.
//
// Complexity: Time O(N²) worst, O(N) on already sorted input. Memory O(1). Stable.
func Insertion[E constraints.Ordered](s []E) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		// stop at the left edge or at the first element not greater than v
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}
