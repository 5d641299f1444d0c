// SPDX-License-Identifier: MIT

// Package bintree defines the tree node, traversal orders and strategies,
// sentinel errors and functional options.
package bintree

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOrder is returned for an Order value that is not defined.
	ErrUnknownOrder = errors.New("bintree: unknown traversal order")

	// ErrUnknownStrategy is returned for a Strategy value that is not defined.
	ErrUnknownStrategy = errors.New("bintree: unknown traversal strategy")

	// ErrOptionViolation is returned by Traverse when an invalid Option was supplied.
	ErrOptionViolation = errors.New("bintree: invalid option supplied")
)

// Node is one vertex of a binary tree. Left and Right are owned by the node
// alone; a nil child is an absent subtree.
type Node struct {
	Value int
	Left  *Node
	Right *Node
}

// Order selects when a node is emitted relative to its subtrees.
type Order int

const (
	// PreOrder emits the node, then its left subtree, then its right subtree.
	PreOrder Order = iota
	// InOrder emits the left subtree, the node, then the right subtree.
	InOrder
	// PostOrder emits the left subtree, the right subtree, then the node.
	PostOrder
)

// String returns "pre-order", "in-order" or "post-order".
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder accepts "pre", "in", "post" and their "-order" forms.
func ParseOrder(name string) (Order, error) {
	switch name {
	case "pre", "pre-order", "preorder":
		return PreOrder, nil
	case "in", "in-order", "inorder":
		return InOrder, nil
	case "post", "post-order", "postorder":
		return PostOrder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
	}
}

// Strategy selects how the traversal keeps track of pending nodes.
type Strategy int

const (
	// Recursive follows the order definitions with direct recursion.
	Recursive Strategy = iota
	// Iterative keeps pending nodes on an explicit stack.
	Iterative
)

func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "recursive" and "iterative" (alias "stack").
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "recursive":
		return Recursive, nil
	case "iterative", "stack":
		return Iterative, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures Traverse.
type Option func(*Options)

// Options holds the optional hooks of a traversal.
type Options struct {
	// OnVisit, if non-nil, is called with each value as it is emitted.
	// Returning an error aborts the traversal with that error.
	OnVisit func(value int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options without hooks.
func DefaultOptions() Options {
	return Options{OnVisit: nil, err: nil}
}

// WithOnVisit installs fn as the visit hook. A nil fn is recorded as
// ErrOptionViolation.
func WithOnVisit(fn func(value int) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnVisit hook", ErrOptionViolation)
			return
		}
		o.OnVisit = fn
	}
}
