// Package tree provides the node type and comparison helpers shared by
// the bst engine and its collaborators.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. A node owns its children exclusively:
// no child is ever shared between two parents. There is deliberately
// no parent pointer; operations that need the parent (removal) track
// it as local descent state instead, which keeps ownership acyclic.
type Node[T constraints.Ordered] struct {
	Key         T
	Left, Right *Node[T]
}

func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
