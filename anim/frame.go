// Package anim turns the traces reported by package bst into ordered
// sequences of animation frames. Both generators are pure: the same
// trace and coordinate lookup always produce the same frames, which is
// what makes seek-by-index playback and golden tests possible.
package anim

import (
	"golang.org/x/exp/constraints"
)

// Coord is a grid position assigned to a key by a layout collaborator.
type Coord struct {
	X, Y int
}

// Edge is a traced connection between two coordinates.
type Edge struct {
	From, To Coord
}

// Lookup maps keys to coordinates. It is a snapshot: the generators
// read it but never modify it, and a key missing from it is skipped
// rather than treated as an error (the tree may have changed since the
// snapshot was taken).
type Lookup[T constraints.Ordered] map[T]Coord

// Frame is one immutable snapshot in a playback sequence. Current and
// Pointer are nil when nothing is highlighted. Visited preserves
// insertion order; PathStack is the in-progress root-to-here chain of a
// detailed traversal. Each frame owns its slices outright, so frames
// may be rendered in any order and mutated freely by a consumer
// without affecting their neighbours.
type Frame[T constraints.Ordered] struct {
	Current   *T
	Pointer   *Coord
	Visited   []T
	PathStack []T
	Edges     []Edge
}
