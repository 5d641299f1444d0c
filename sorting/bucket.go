// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"
	"math"
)

// Bucket returns the values of s in ascending order using bucket sort with
// buckets covering width consecutive values each. s itself is not modified.
//
// With lo and hi the minimum and maximum of the input, (hi-lo)/width+1
// buckets are created and every value v goes to bucket (v-lo)/width, in
// input order. Each bucket is then bucket-sorted again with the same width
// and the buckets are concatenated in order. When a level produces a single
// bucket the width shrinks before recursing, by one but never above hi-lo
// (every larger width gives the same single bucket), so the recursion depth
// is bounded by the value range and not by width. A width of 1 is the base
// case: every bucket then holds one distinct value and is emitted as is.
//
// The range hi-lo is computed in unsigned arithmetic, so values spanning
// the whole int range are fine as long as (hi-lo)/width buckets fit in
// memory; a bucket count that does not even fit in an int is reported with
// ErrValueRange.
//
// ErrBucketWidth is returned when width < 1.
//
// Complexity: Time O(N + B) average with B buckets, O(N²) when everything
// lands in one bucket. Memory O(N + B) per level.
func Bucket(s []int, width int) ([]int, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBucketWidth, width)
	}
	if len(s) > 1 {
		lo, hi := minMax(s)
		if valueSpan(lo, hi)/uint(width) >= math.MaxInt {
			return nil, fmt.Errorf("%w: [%d, %d] with width %d", ErrValueRange, lo, hi, width)
		}
	}
	out := make([]int, len(s))
	copy(out, s)

	return bucketSort(out, width), nil
}

// bucketSort may return s itself when it has fewer than two elements.
func bucketSort(s []int, width int) []int {
	if len(s) < 2 {
		return s
	}

	lo, hi := minMax(s)
	span, w := valueSpan(lo, hi), uint(width)
	count := int(span/w) + 1
	buckets := make([][]int, count)
	for _, v := range s {
		i := valueSpan(lo, v) / w
		buckets[i] = append(buckets[i], v)
	}

	out := make([]int, 0, len(s))
	for _, b := range buckets {
		if width == 1 {
			out = append(out, b...)
			continue
		}
		if count == 1 {
			// span < width here, so span fits in an int
			width = max(1, min(width-1, int(span)))
		}
		out = append(out, bucketSort(b, width)...)
	}

	return out
}

// valueSpan returns hi-lo for lo <= hi without overflowing: the unsigned
// difference of two ints is exact even when the signed one would wrap.
func valueSpan(lo, hi int) uint {
	return uint(hi) - uint(lo)
}
