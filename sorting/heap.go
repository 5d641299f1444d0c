// SPDX-License-Identifier: MIT

package sorting

import "golang.org/x/exp/constraints"

// Heap sorts s in ascending order with heapsort.
//
// Phase 1 turns s into a max-heap in place by sifting down every non-leaf
// index, from the last one (N/2-1) back to the root. Phase 2 repeatedly
// swaps the root, which holds the maximum of the heap, with the last element
// of the heap, shrinks the heap by one, and sifts the new root down.
//
// Complexity: Time O(N log N) on every input, Memory O(1). Not stable.
func Heap[E constraints.Ordered](s []E) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n)
	}
	for end := n - 1; end >= 1; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i,
// considering only the first n elements of s. The displaced value is held
// aside and larger children are moved up until its slot is found.
//
// Complexity: O(log n).
func siftDown[E constraints.Ordered](s []E, i, n int) {
	v := s[i]
	k := i
	child := 2*k + 1
	for child < n {
		// pick the larger of the two children
		if child+1 < n && s[child] < s[child+1] {
			child++
		}
		if s[child] <= v {
			break
		}
		s[k] = s[child]
		k = child
		child = 2*k + 1
	}
	s[k] = v
}
