// SPDX-License-Identifier: MIT

package bintree

// visitFunc is called for every node in emission order; an error stops the walk.
type visitFunc func(n *Node) error

func preOrderRecursive(n *Node, visit visitFunc) error {
	if n == nil {
		return nil
	}
	if err := visit(n); err != nil {
		return err
	}
	if err := preOrderRecursive(n.Left, visit); err != nil {
		return err
	}

	return preOrderRecursive(n.Right, visit)
}

func inOrderRecursive(n *Node, visit visitFunc) error {
	if n == nil {
		return nil
	}
	if err := inOrderRecursive(n.Left, visit); err != nil {
		return err
	}
	if err := visit(n); err != nil {
		return err
	}

	return inOrderRecursive(n.Right, visit)
}

func postOrderRecursive(n *Node, visit visitFunc) error {
	if n == nil {
		return nil
	}
	if err := postOrderRecursive(n.Left, visit); err != nil {
		return err
	}
	if err := postOrderRecursive(n.Right, visit); err != nil {
		return err
	}

	return visit(n)
}
