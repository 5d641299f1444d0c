// SPDX-License-Identifier: MIT

// Package sorting defines sentinel errors, algorithm names and functional
// options shared by the sorting functions and the Sort dispatcher.
package sorting

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned by QuickRange when lo or hi lies outside
	// the slice. An empty range (lo >= hi) is not an error.
	ErrInvalidRange = errors.New("sorting: range out of bounds")

	// ErrNegativeValue is returned by Radix and RadixDigits, which only
	// handle non-negative integers.
	ErrNegativeValue = errors.New("sorting: radix sort requires non-negative values")

	// ErrBucketWidth is returned by Bucket when the bucket width is below 1.
	ErrBucketWidth = errors.New("sorting: bucket width must be at least 1")

	// ErrValueRange is returned by Bucket when the value range divided by the
	// bucket width does not fit in an int.
	ErrValueRange = errors.New("sorting: value range too large for bucket width")

	// ErrUnknownAlgorithm is returned for an Algorithm name that is not registered.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrOptionViolation is returned by Sort when an invalid Option was supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")
)

// Algorithm names a sorting algorithm understood by Sort.
type Algorithm string

// Registered algorithm names, as accepted by ParseAlgorithm.
const (
	BubbleSort        Algorithm = "bubble"
	SelectionSort     Algorithm = "selection"
	InsertionSort     Algorithm = "insertion"
	ShellSort         Algorithm = "shell"
	QuickSort         Algorithm = "quick"
	HeapSort          Algorithm = "heap"
	MergeSort         Algorithm = "merge"
	MergeBottomUpSort Algorithm = "merge-bottom-up"
	CountingSort      Algorithm = "counting"
	RadixSort         Algorithm = "radix"
	BucketSort        Algorithm = "bucket"
)

// algorithms lists every Algorithm in the order Algorithms reports them.
var algorithms = []Algorithm{
	BubbleSort,
	SelectionSort,
	InsertionSort,
	ShellSort,
	QuickSort,
	HeapSort,
	MergeSort,
	MergeBottomUpSort,
	CountingSort,
	RadixSort,
	BucketSort,
}

// Algorithms returns the names of all algorithms supported by Sort.
// The returned slice is a fresh copy.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)

	return out
}

// ParseAlgorithm maps a name such as "quick" to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if string(a) == name {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Comparison reports whether a only compares elements (and therefore
// accepts any signed input).
func (a Algorithm) Comparison() bool {
	switch a {
	case CountingSort, RadixSort, BucketSort:
		return false
	default:
		return true
	}
}

// DefaultBucketWidth is the bucket width Sort uses for BucketSort.
const DefaultBucketWidth = 10

// Option configures Sort via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Sort.
type Option func(*Options)

// Options holds the tunables of the distribution sorts.
type Options struct {
	// BucketWidth is the value range covered by one bucket in BucketSort.
	BucketWidth int

	// RadixDigits, if positive, fixes the number of decimal passes of
	// RadixSort (RadixDigits is used instead of Radix). Zero derives the
	// count from the maximum value.
	RadixDigits int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - BucketWidth = DefaultBucketWidth
//   - RadixDigits = 0 (derived from the input)
func DefaultOptions() Options {
	return Options{
		BucketWidth: DefaultBucketWidth,
		RadixDigits: 0,
		err:         nil,
	}
}

// WithBucketWidth sets the bucket width for BucketSort. Widths below 1 are
// rejected with ErrOptionViolation.
func WithBucketWidth(width int) Option {
	return func(o *Options) {
		if width < 1 {
			o.err = fmt.Errorf("%w: bucket width %d", ErrOptionViolation, width)
			return
		}
		o.BucketWidth = width
	}
}

// WithRadixDigits fixes the number of decimal digit passes for RadixSort.
// Negative counts are rejected with ErrOptionViolation.
func WithRadixDigits(digits int) Option {
	return func(o *Options) {
		if digits < 0 {
			o.err = fmt.Errorf("%w: radix digits %d", ErrOptionViolation, digits)
			return
		}
		o.RadixDigits = digits
	}
}
