// SPDX-License-Identifier: MIT

// Package bintree implements an immutable binary tree of integers and its
// depth-first traversals: pre-order, in-order and post-order, each available
// as plain recursion and as an explicit-stack iteration.
//
// What:
//
//   - Node: a value with optional, exclusively owned Left and Right children.
//     Trees are built bottom-up (children before parents) with NewNode,
//     Balanced or Sample and are never rewired afterwards, so they are
//     acyclic by construction.
//   - Traversal orders:
//   - PreOrder  — visit, left, right
//   - InOrder   — left, visit, right
//   - PostOrder — left, right, visit
//   - Strategies:
//   - Recursive — structural recursion on the call stack
//   - Iterative — explicit LIFO stack of *Node; post-order emits a node
//     only once its right subtree is absent or was the last node emitted
//
// Both strategies emit exactly the same sequence for every tree and order.
// Traversal never mutates the tree; the stack holds borrowed references.
//
// Complexity:
//
//   - every traversal: Time O(N), Memory O(H) with H the tree height
//     (call stack for Recursive, slice stack for Iterative)
//
// Errors:
//
//   - ErrUnknownOrder      Order outside PreOrder…PostOrder
//   - ErrUnknownStrategy   Strategy outside Recursive…Iterative
//   - ErrOptionViolation   invalid Option (e.g. WithOnVisit(nil))
//   - hook errors          returned by OnVisit, wrapped, abort the traversal
//
// Functions:
//
//   - Traverse(root, order, strategy, opts...) ([]int, error)
//   - NewNode(value, left, right), Sample(), Balanced(values)
//   - ParseOrder(name), ParseStrategy(name), WithOnVisit(fn)
package bintree
