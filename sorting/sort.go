// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sort sorts s with the named algorithm and returns the sorted values.
//
// In-place algorithms (every comparison sort and RadixSort) rearrange s and
// return it; CountingSort and BucketSort return a new slice and leave s
// untouched. Options only affect the distribution sorts:
//
//   - WithBucketWidth(w)  bucket width for BucketSort (default DefaultBucketWidth)
//   - WithRadixDigits(d)  fixed digit pass count for RadixSort (default: derived)
//
// Errors: ErrOptionViolation, ErrUnknownAlgorithm, and whatever the selected
// algorithm reports (ErrNegativeValue for RadixSort, ErrValueRange for
// BucketSort).
func Sort(a Algorithm, s []int, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	switch a {
	case BubbleSort:
		Bubble(s)
	case SelectionSort:
		Selection(s)
	case InsertionSort:
		Insertion(s)
	case ShellSort:
		Shell(s)
	case QuickSort:
		Quick(s)
	case HeapSort:
		Heap(s)
	case MergeSort:
		Merge(s)
	case MergeBottomUpSort:
		MergeBottomUp(s)
	case CountingSort:
		return Counting(s), nil
	case RadixSort:
		var err error
		if o.RadixDigits > 0 {
			err = RadixDigits(s, o.RadixDigits)
		} else {
			err = Radix(s)
		}
		if err != nil {
			return nil, err
		}
	case BucketSort:
		return Bucket(s, o.BucketWidth)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}

	return s, nil
}

// IsSorted reports whether s is in non-decreasing order.
//
// Complexity: O(N).
func IsSorted[E constraints.Ordered](s []E) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}

	return true
}
