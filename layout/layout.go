// Package layout is the coordinate provider: given a tree, it assigns
// every key a grid position for the animation to point at. Keys get
// their in-order rank as x (so x increases strictly with key) and
// their depth from the root as y. The result is a snapshot; it is
// taken once per operation and does not follow later mutations.
package layout

import (
	"go.lepak.sg/bstviz/anim"
	"go.lepak.sg/bstviz/tree/bst"
	"golang.org/x/exp/constraints"
)

// Grid returns the coordinate lookup for every key currently in t.
func Grid[T constraints.Ordered](t *bst.Tree[T]) anim.Lookup[T] {
	lookup := make(anim.Lookup[T], t.Len())

	x := 0
	t.Do(func(k T) bool {
		lookup[k] = anim.Coord{X: x}
		x++
		return true
	})

	t.Walk(func(info bst.NodeInfo[T]) {
		at := lookup[info.Value]
		at.Y = info.Depth
		lookup[info.Value] = at
	})

	return lookup
}

// NodeBox is one placed node with its immediate child links, for
// renderers that draw the static tree rather than the animation trace.
type NodeBox[T constraints.Ordered] struct {
	Value       T
	At          anim.Coord
	Left, Right *T
}

// Place returns every node's box in pre-order.
func Place[T constraints.Ordered](t *bst.Tree[T]) []NodeBox[T] {
	lookup := Grid(t)
	boxes := make([]NodeBox[T], 0, t.Len())

	t.Walk(func(info bst.NodeInfo[T]) {
		boxes = append(boxes, NodeBox[T]{
			Value: info.Value,
			At:    lookup[info.Value],
			Left:  info.Left,
			Right: info.Right,
		})
	})

	return boxes
}
