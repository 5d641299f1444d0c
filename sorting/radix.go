// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"
	"math"
)

// radixBase is the number of buckets per digit pass (decimal digits).
const radixBase = 10

// maxDecimalDigits is the digit count of the largest int on this platform.
var maxDecimalDigits = decimalDigits(math.MaxInt)

// Radix sorts s in ascending order with least-significant-digit radix sort.
//
// The number of passes is the decimal digit count of the maximum value. Each
// pass distributes the elements, in their current order, into ten buckets
// keyed by one decimal digit, then concatenates the buckets 0…9 back into s.
// Every pass is stable, which is what makes the final order correct.
//
// Only non-negative values are supported. If s contains a negative value
// ErrNegativeValue is returned and s is left as it was.
//
// Complexity: Time O(d·N), Memory O(N), d = digits of max(s).
func Radix(s []int) error {
	if err := checkNonNegative(s); err != nil {
		return err
	}
	if len(s) < 2 {
		return nil
	}

	_, hi := minMax(s)
	var buckets [radixBase][]int
	div := 1
	for pass, digits := 0, decimalDigits(hi); pass < digits; pass++ {
		distributeDigit(s, div, &buckets)
		if pass+1 < digits {
			div *= radixBase
		}
	}

	return nil
}

// RadixDigits sorts s by its lowest digits decimal digits, least significant
// first, using one stable counting pass per digit (prefix sums over ten
// counters, elements placed back-to-front into a scratch slice).
//
// digits <= 0 derives the count from the maximum value, giving the same
// result as Radix. If digits is smaller than the digit count of some value,
// s ends up ordered by the low digits only and higher digits keep their
// input order. Counts beyond the width of int are clamped.
//
// Negative values are rejected with ErrNegativeValue; s is not modified.
//
// Complexity: Time O(digits·N), Memory O(N).
func RadixDigits(s []int, digits int) error {
	if err := checkNonNegative(s); err != nil {
		return err
	}
	if len(s) < 2 {
		return nil
	}
	if digits <= 0 {
		_, hi := minMax(s)
		digits = decimalDigits(hi)
	}
	digits = min(digits, maxDecimalDigits)

	src, dst := s, make([]int, len(s))
	div := 1
	for pass := 0; pass < digits; pass++ {
		countingPass(src, dst, div)
		src, dst = dst, src
		if pass+1 < digits {
			div *= radixBase
		}
	}
	// after an odd number of passes the result lives in the scratch slice
	if digits%2 == 1 {
		copy(s, src)
	}

	return nil
}

// distributeDigit performs one digit pass of Radix: elements are appended
// to buckets[digit] in input order and copied back bucket by bucket. The
// bucket slices are reused across passes.
func distributeDigit(s []int, div int, buckets *[radixBase][]int) {
	for i := range buckets {
		buckets[i] = buckets[i][:0]
	}
	for _, v := range s {
		d := (v / div) % radixBase
		buckets[d] = append(buckets[d], v)
	}
	k := 0
	for _, b := range buckets {
		k += copy(s[k:], b)
	}
}

// countingPass writes src into dst stably ordered by the digit selected by div.
func countingPass(src, dst []int, div int) {
	var counts [radixBase]int
	for _, v := range src {
		counts[(v/div)%radixBase]++
	}
	// prefix sums: counts[d] becomes the end position of digit d
	for d := 1; d < radixBase; d++ {
		counts[d] += counts[d-1]
	}
	for i := len(src) - 1; i >= 0; i-- {
		d := (src[i] / div) % radixBase
		counts[d]--
		dst[counts[d]] = src[i]
	}
}

// decimalDigits returns the number of decimal digits of a non-negative v.
// Zero has no digits, so a slice of zeroes needs no pass at all.
func decimalDigits(v int) int {
	n := 0
	for v != 0 {
		v /= radixBase
		n++
	}

	return n
}

func checkNonNegative(s []int) error {
	for i, v := range s {
		if v < 0 {
			return fmt.Errorf("%w: s[%d] = %d", ErrNegativeValue, i, v)
		}
	}

	return nil
}
