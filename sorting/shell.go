// SPDX-License-Identifier: MIT

package sorting

import "golang.org/x/exp/constraints"

// Shell sorts s in ascending order with Shell's original gap sequence:
// gap starts at N/2 and is halved (integer division) after each round until
// it reaches 0. Every round is an insertion sort over the gap-interleaved
// subsequences; the final gap-1 round is a plain insertion sort over an
// almost sorted slice.
//
// Complexity: Time O(N²) worst for halving gaps, usually far less. Memory O(1). Not stable.
func Shell[E constraints.Ordered](s []E) {
	n := len(s)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			v := s[i]
			j := i - gap
			for j >= 0 && s[j] > v {
				s[j+gap] = s[j]
				j -= gap
			}
			s[j+gap] = v
		}
	}
}
