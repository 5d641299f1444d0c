// SPDX-License-Identifier: MIT

// Package lvsort is an in-memory collection of classic sorting algorithms
// and binary tree traversals.
//
// What is inside:
//
//	• Comparison sorts: bubble, selection, insertion, shell, quick, heap,
//	  merge (top-down and bottom-up), generic over ordered element types
//	• Distribution sorts: counting, radix (LSD decimal), bucket
//	• Binary trees: pre-, in- and post-order traversal, recursive and with
//	  an explicit stack, guaranteed to agree
//	• Ordered array: fixed capacity, binary-search lookup
//
// Every function is a synchronous, stateless operation on caller-owned
// data. Scratch buffers never outlive the call that allocated them.
//
// Packages:
//
//	sorting/   — the sorting algorithms and the Sort dispatcher
//	bintree/   — Node, builders and Traverse
//	ordarray/  — OrderedArray
//	cmd/lvsort — command line demo: list, sort, tree, bench
//
// Quick example:
//
//	s := []int{38, 29, 14, 35, 22, 61, 35, 59, 36, 2, -1, -12}
//	sorting.Heap(s) // [-12 -1 2 14 22 29 35 35 36 38 59 61]
//
//	go get github.com/katalvlaran/lvsort
package lvsort
