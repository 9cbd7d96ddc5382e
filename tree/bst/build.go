package bst

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// FromValues builds a tree by inserting vs in order. Duplicates are
// rejected as usual and returned separately.
func FromValues[T constraints.Ordered](vs ...T) (*Tree[T], []T) {
	tr := &Tree[T]{}
	var dups []T

	for _, v := range vs {
		if !tr.Insert(v).OK {
			dups = append(dups, v)
		}
	}

	return tr, dups
}

// BuildRandom builds a tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	tr := &Tree[int]{}
	for _, n := range nodes {
		tr.Insert(n)
	}

	return tr
}
