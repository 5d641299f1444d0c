// SPDX-License-Identifier: MIT

package bintree_test

import (
	"testing"

	"github.com/katalvlaran/lvsort/bintree"
)

// benchmarkTraverse walks a balanced tree of n nodes b.N times.
func benchmarkTraverse(b *testing.B, n int, order bintree.Order, strategy bintree.Strategy) {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	root := bintree.Balanced(values)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bintree.Traverse(root, order, strategy); err != nil {
			b.Fatalf("traverse failed: %v", err)
		}
	}
}

func BenchmarkTraverse_PostOrderRecursive_100000(b *testing.B) {
	benchmarkTraverse(b, 100000, bintree.PostOrder, bintree.Recursive)
}

func BenchmarkTraverse_PostOrderIterative_100000(b *testing.B) {
	benchmarkTraverse(b, 100000, bintree.PostOrder, bintree.Iterative)
}

func BenchmarkTraverse_InOrderIterative_100000(b *testing.B) {
	benchmarkTraverse(b, 100000, bintree.InOrder, bintree.Iterative)
}
