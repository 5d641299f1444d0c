// SPDX-License-Identifier: MIT

// Package sorting implements classic in-memory sorting algorithms over
// slices: seven comparison sorts that work in place and three distribution
// sorts for integers.
//
// What:
//
//   - Comparison sorts (generic over constraints.Ordered, in place):
//   - Bubble        — N-1 adjacent-swap passes, no early exit.
//   - Selection     — minimum of the unsorted suffix swapped to its front.
//   - Insertion     — shift strictly-greater predecessors right, then place.
//   - Shell         — gapped insertion with gaps N/2, N/4, …, 1.
//   - Quick         — first-element pivot, two-sided scan, recursion on both halves.
//   - Heap          — bottom-up max-heap, root swapped to the tail, sift-down.
//   - Merge         — top-down recursion, stable merge through a scratch buffer.
//   - MergeBottomUp — iterative run doubling, identical output to Merge.
//   - Distribution sorts ([]int):
//   - Counting      — frequency array offset by the minimum; negatives allowed.
//   - Radix         — LSD decimal digit passes over 10 stable buckets.
//   - RadixDigits   — fixed number of decimal passes using counting passes.
//   - Bucket        — width-sized buckets, recursively bucket-sorted.
//
// Complexity:
//
//   - Bubble, Selection:  Time O(N²),                  Memory O(1)
//   - Insertion:          Time O(N²), O(N) if sorted,  Memory O(1)
//   - Shell:              Time O(N²) worst (halving gaps), Memory O(1)
//   - Quick:              Time O(N log N) expected, O(N²) on sorted input, Memory O(N) stack worst
//   - Heap:               Time O(N log N),             Memory O(1)
//   - Merge, MergeBottomUp: Time O(N log N),           Memory O(N)
//   - Counting:           Time O(N + K), K = max-min+1, Memory O(N + K)
//   - Radix:              Time O(d·N), d = digits of max, Memory O(N)
//   - Bucket:             Time O(N + B) average, O(N²) if one bucket holds everything
//
// Preconditions (documented, partially reported):
//
//   - Counting and Bucket allocate in proportion to max-min; a huge value
//     range relative to N is the caller's responsibility. Counting also
//     needs max-min+1 to fit in an int.
//   - Radix and RadixDigits only accept non-negative values and report
//     ErrNegativeValue otherwise; the slice is left untouched in that case.
//
// Errors:
//
//   - ErrInvalidRange       QuickRange bounds outside the slice
//   - ErrNegativeValue      Radix/RadixDigits given a negative value
//   - ErrBucketWidth        Bucket width smaller than 1
//   - ErrValueRange         Bucket value range / width does not fit in an int
//   - ErrUnknownAlgorithm   Sort/ParseAlgorithm with an unknown name
//   - ErrOptionViolation    Sort with an invalid Option
//
// Empty and single-element slices are valid input for every function and
// are returned unchanged.
//
// Functions:
//
//   - Sort(a Algorithm, s []int, opts ...Option) ([]int, error)
//     dispatch by name; in-place algorithms return s itself
//   - Algorithms(), ParseAlgorithm(name), IsSorted(s)
//   - DefaultOptions(), WithBucketWidth(), WithRadixDigits()
package sorting
