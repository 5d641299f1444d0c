// SPDX-License-Identifier: MIT

// Package ordarray provides a fixed-capacity array of integers kept in
// ascending order, with binary-search lookup.
//
// Insert shifts the tail one slot right to open a gap, Delete shifts it one
// slot left to close one, and Find halves the search range on every step.
//
// Complexity:
//
//   - Find:   O(log N)
//   - Insert: O(N)
//   - Delete: O(N)
//
// Errors:
//
//   - ErrBadCapacity  capacity below 1
//   - ErrFull         Insert into a full array
package ordarray

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsort/sorting"
)

var (
	// ErrBadCapacity is returned by New and FromValues for a capacity below 1.
	ErrBadCapacity = errors.New("ordarray: capacity must be at least 1")

	// ErrFull is returned when inserting into an array that holds Cap values.
	ErrFull = errors.New("ordarray: array is full")
)

// OrderedArray holds up to a fixed number of ints in ascending order.
// The zero value is not usable; create one with New or FromValues.
type OrderedArray struct {
	values []int // len = number of stored values, cap = capacity
}

// New returns an empty OrderedArray that can hold capacity values.
func New(capacity int) (*OrderedArray, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return &OrderedArray{values: make([]int, 0, capacity)}, nil
}

// FromValues returns an OrderedArray of the given capacity holding values.
// The values are copied and put in order with an insertion sort, which is
// linear when they already arrive sorted. ErrFull is returned when there are
// more values than capacity.
func FromValues(capacity int, values ...int) (*OrderedArray, error) {
	a, err := New(capacity)
	if err != nil {
		return nil, err
	}
	if len(values) > capacity {
		return nil, fmt.Errorf("%w: %d values for capacity %d", ErrFull, len(values), capacity)
	}
	a.values = append(a.values, values...)
	sorting.Insertion(a.values)

	return a, nil
}

// Len returns the number of stored values.
func (a *OrderedArray) Len() int { return len(a.values) }

// Cap returns the maximum number of values the array can hold.
func (a *OrderedArray) Cap() int { return cap(a.values) }

// Values returns a copy of the stored values in ascending order.
func (a *OrderedArray) Values() []int {
	out := make([]int, len(a.values))
	copy(out, a.values)

	return out
}

// Find returns the index of target, or -1 if it is not stored. With
// duplicates, any index holding target may be returned.
func (a *OrderedArray) Find(target int) int {
	lo, hi := 0, len(a.values)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch v := a.values[mid]; {
		case v == target:
			return mid
		case v < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1
}

// Insert adds v after every stored value that is <= v.
func (a *OrderedArray) Insert(v int) error {
	n := len(a.values)
	if n == cap(a.values) {
		return fmt.Errorf("%w: capacity %d", ErrFull, n)
	}

	// first position holding a value greater than v
	pos := 0
	for pos < n && a.values[pos] <= v {
		pos++
	}
	a.values = a.values[:n+1]
	copy(a.values[pos+1:], a.values[pos:n])
	a.values[pos] = v

	return nil
}

// Delete removes one occurrence of target and reports whether it was found.
func (a *OrderedArray) Delete(target int) bool {
	idx := a.Find(target)
	if idx < 0 {
		return false
	}
	copy(a.values[idx:], a.values[idx+1:])
	a.values = a.values[:len(a.values)-1]

	return true
}
