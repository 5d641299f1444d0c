// SPDX-License-Identifier: MIT

package bintree

// NewNode returns a node holding value with the given, already built,
// children. Either child may be nil.
func NewNode(value int, left, right *Node) *Node {
	return &Node{Value: value, Left: left, Right: right}
}

// Sample builds the nine-node demonstration tree, leaves first:
//
//	        6
//	      /   \
//	     3     9
//	    / \   /
//	   1   5 7
//	    \ /   \
//	    2 4    8
//
// Pre-order: 6 3 1 2 5 4 9 7 8. In-order: 1 … 9. Post-order: 2 1 4 5 3 8 7 9 6.
func Sample() *Node {
	n8 := NewNode(8, nil, nil)
	n4 := NewNode(4, nil, nil)
	n2 := NewNode(2, nil, nil)
	n7 := NewNode(7, nil, n8)
	n5 := NewNode(5, n4, nil)
	n1 := NewNode(1, nil, n2)
	n9 := NewNode(9, n7, nil)
	n3 := NewNode(3, n1, n5)

	return NewNode(6, n3, n9)
}

// Balanced builds a height-balanced tree whose in-order sequence is values,
// in the given order. The middle element (lower middle for even lengths)
// becomes the root and both halves are built recursively before it.
// An empty slice yields nil.
//
// Complexity: Time O(N), Memory O(N) nodes + O(log N) stack.
func Balanced(values []int) *Node {
	if len(values) == 0 {
		return nil
	}
	mid := (len(values) - 1) / 2
	left := Balanced(values[:mid])
	right := Balanced(values[mid+1:])

	return NewNode(values[mid], left, right)
}

// Size returns the number of nodes in the tree rooted at n; nil has size 0.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}

	return 1 + n.Left.Size() + n.Right.Size()
}

// Height returns the number of nodes on the longest root-to-leaf path;
// nil has height 0.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}

	return 1 + max(n.Left.Height(), n.Right.Height())
}
