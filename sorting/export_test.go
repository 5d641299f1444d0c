// SPDX-License-Identifier: MIT

package sorting

// DistributeDigit exposes one bucket-based digit pass of Radix.
func DistributeDigit(s []int, div int) {
	var buckets [radixBase][]int
	distributeDigit(s, div, &buckets)
}

// CountingPass exposes one counting-based digit pass of RadixDigits.
var CountingPass = countingPass

// DecimalDigits exposes the digit counter used to size radix passes.
var DecimalDigits = decimalDigits
