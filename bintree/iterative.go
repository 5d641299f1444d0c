// SPDX-License-Identifier: MIT

package bintree

// nodeStack is a LIFO of borrowed node references.
type nodeStack []*Node

func (s *nodeStack) push(n *Node) { *s = append(*s, n) }

// pop removes and returns the top node. The caller checks len first.
func (s *nodeStack) pop() *Node {
	old := *s
	n := old[len(old)-1]
	old[len(old)-1] = nil // drop the reference held by the backing array
	*s = old[:len(old)-1]

	return n
}

func (s nodeStack) top() *Node { return s[len(s)-1] }

// preOrderIterative visits a node as soon as it is reached, pushes it and
// walks left. When the left spine ends, the most recent node is popped and
// the walk continues in its right subtree.
func preOrderIterative(root *Node, visit visitFunc) error {
	var stack nodeStack
	node := root
	for node != nil || len(stack) > 0 {
		if node != nil {
			if err := visit(node); err != nil {
				return err
			}
			stack.push(node)
			node = node.Left
			continue
		}
		node = stack.pop().Right
	}

	return nil
}

// inOrderIterative pushes the whole left spine; a node is visited when it is
// popped, after which the walk continues in its right subtree.
func inOrderIterative(root *Node, visit visitFunc) error {
	var stack nodeStack
	node := root
	for node != nil || len(stack) > 0 {
		if node != nil {
			stack.push(node)
			node = node.Left
			continue
		}
		node = stack.pop()
		if err := visit(node); err != nil {
			return err
		}
		node = node.Right
	}

	return nil
}

// postOrderIterative emits a node only after both subtrees are done. The
// left spine is pushed; the top of the stack is emitted when it has no right
// child or its right child is the node emitted last. Otherwise the right
// child's left spine is pushed above it and the loop continues.
func postOrderIterative(root *Node, visit visitFunc) error {
	if root == nil {
		return nil
	}
	var (
		stack nodeStack
		last  *Node
	)
	pushLeftSpine := func(n *Node) {
		for ; n != nil; n = n.Left {
			stack.push(n)
		}
	}

	pushLeftSpine(root)
	for len(stack) > 0 {
		node := stack.top()
		if node.Right != nil && node.Right != last {
			pushLeftSpine(node.Right)
			continue
		}
		stack.pop()
		if err := visit(node); err != nil {
			return err
		}
		last = node
	}

	return nil
}
