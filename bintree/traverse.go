// SPDX-License-Identifier: MIT

package bintree

import "fmt"

// Traverse walks the tree rooted at root in the given order using the given
// strategy and returns the emitted values. A nil root yields an empty,
// non-nil slice. The tree is not modified.
//
// Options:
//
//   - WithOnVisit(fn)  hook called for each emitted value; an error aborts
//
// Errors: ErrUnknownOrder, ErrUnknownStrategy, ErrOptionViolation, or the
// hook error wrapped as "bintree: OnVisit hook for <value>: <err>". On error
// the returned slice is nil.
//
// Complexity: Time O(N), Memory O(N) for the result + O(H) traversal state.
func Traverse(root *Node, order Order, strategy Strategy, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	walk, err := walker(order, strategy)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, root.Size())
	visit := func(n *Node) error {
		if o.OnVisit != nil {
			if err := o.OnVisit(n.Value); err != nil {
				return fmt.Errorf("bintree: OnVisit hook for %d: %w", n.Value, err)
			}
		}
		out = append(out, n.Value)

		return nil
	}
	if err = walk(root, visit); err != nil {
		return nil, err
	}

	return out, nil
}

// walker selects the traversal function for order and strategy.
func walker(order Order, strategy Strategy) (func(*Node, visitFunc) error, error) {
	var recursive, iterative func(*Node, visitFunc) error
	switch order {
	case PreOrder:
		recursive, iterative = preOrderRecursive, preOrderIterative
	case InOrder:
		recursive, iterative = inOrderRecursive, inOrderIterative
	case PostOrder:
		recursive, iterative = postOrderRecursive, postOrderIterative
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}

	switch strategy {
	case Recursive:
		return recursive, nil
	case Iterative:
		return iterative, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
}
