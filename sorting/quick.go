// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Quick sorts s in ascending order with quicksort, using the first element
// of each range as the pivot.
//
// Complexity: Time O(N log N) expected, O(N²) on sorted or reverse-sorted
// input. Memory O(log N) expected recursion depth, O(N) worst. Not stable.
func Quick[E constraints.Ordered](s []E) {
	quick(s, 0, len(s)-1)
}

// QuickRange sorts the inclusive index range [lo, hi] of s and leaves the
// rest of s untouched. A range with lo >= hi holds at most one element and is
// a no-op. Otherwise lo and hi must both index into s, or ErrInvalidRange is
// returned and s is not modified.
func QuickRange[E constraints.Ordered](s []E, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	if lo < 0 || hi >= len(s) {
		return fmt.Errorf("%w: [%d, %d] with len %d", ErrInvalidRange, lo, hi, len(s))
	}
	quick(s, lo, hi)

	return nil
}

// quick sorts s[start..end] (inclusive). Callers guarantee that the bounds
// are valid whenever start < end.
func quick[E constraints.Ordered](s []E, start, end int) {
	if start >= end {
		return
	}
	p := partition(s, start, end)
	quick(s, start, p-1)
	quick(s, p+1, end)
}

// partition moves s[start] to its final sorted position within
// s[start..end] and returns that position. Everything left of it is <= the
// pivot, everything right of it is >= the pivot.
//
// The right cursor moves first, skipping elements >= pivot; then the left
// cursor skips elements <= pivot. Both stop before crossing and the pair is
// swapped. Because the right cursor always moves first, the cell where the
// cursors meet holds a value <= pivot, so it can be swapped with the pivot
// slot. Elements equal to the pivot never block a cursor and may end up on
// either side.
func partition[E constraints.Ordered](s []E, start, end int) int {
	pivot := s[start]
	left, right := start, end
	for left < right {
		for left < right && s[right] >= pivot {
			right--
		}
		for left < right && s[left] <= pivot {
			left++
		}
		if left < right {
			s[left], s[right] = s[right], s[left]
		}
	}
	s[start] = s[left]
	s[left] = pivot

	return left
}
