// Package bst implements a binary search tree whose operations report
// the exact sequence of nodes they examined. The tree itself is an
// ordinary unbalanced BST; the point of the package is that every
// operation returns enough of a trace for package anim to replay it
// step by step.
package bst

import (
	"fmt"

	"go.lepak.sg/bstviz/tree"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, traversing) but not for concurrent reads and writes.
// The surrounding application is expected to serialize operations;
// the tree itself takes no locks.
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree is not self-balancing.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at
//     N.Left will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at
//     N.Right will be greater than N.Key
//   - For every possible key, there will be at most one node with that
//     key in the tree (no duplicates allowed)
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root *tree.Node[T]
	size int
}

// Result is the outcome of an insert, search or remove.
// Path holds every key compared against during the descent, in order,
// whether or not the operation succeeded.
type Result[T constraints.Ordered] struct {
	OK      bool
	Path    []T
	Message string
}

// ExtremumResult is the outcome of FindMin or FindMax. OK is false only
// for an empty tree, in which case Value is the zero T and Path is empty.
type ExtremumResult[T constraints.Ordered] struct {
	Value   T
	OK      bool
	Path    []T
	Message string
}

const msgEmptyTree = "Tree is empty"

// Insert inserts v into the tree. The returned path holds every key
// compared against on the way down; on success it additionally ends
// with v itself. Inserting a key already in the tree changes nothing
// and reports OK=false, with the path ending at the occupant.
func (t *Tree[T]) Insert(v T) Result[T] {
	var path []T
	n, p := t.root, (*tree.Node[T])(nil)
	var cmp tree.Order

	for n != nil {
		path = append(path, n.Key)
		cmp = tree.Compare(v, n.Key)
		switch cmp {
		case tree.Less:
			n, p = n.Left, n
		case tree.Greater:
			n, p = n.Right, n
		case tree.Equal:
			return Result[T]{
				Path:    path,
				Message: fmt.Sprintf("Value %v already exists", v),
			}
		default:
			panic("unreachable")
		}
	}

	newnode := tree.NodeOf(v)
	switch {
	case p == nil:
		t.root = newnode
	case cmp == tree.Less:
		if p.Left != nil {
			panic("impossible")
		}
		p.Left = newnode
	default:
		if p.Right != nil {
			panic("impossible")
		}
		p.Right = newnode
	}
	t.size++

	path = append(path, v)
	return Result[T]{
		OK:      true,
		Path:    path,
		Message: fmt.Sprintf("Inserted %v", v),
	}
}

// Search looks for v and reports whether it was found. The path holds
// every key compared against, ending with v itself if found, or with
// the last occupied node before the null edge if not.
func (t *Tree[T]) Search(v T) Result[T] {
	var path []T
	n := t.root

	for n != nil {
		path = append(path, n.Key)
		switch tree.Compare(v, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return Result[T]{
				OK:      true,
				Path:    path,
				Message: fmt.Sprintf("Found %v", v),
			}
		default:
			panic("unreachable")
		}
	}

	return Result[T]{
		Path:    path,
		Message: fmt.Sprintf("Value %v not found", v),
	}
}

// Contains reports whether v is in the tree, without recording a path.
func (t *Tree[T]) Contains(v T) bool {
	n := t.root

	for n != nil {
		switch tree.Compare(v, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Remove removes v from the tree. The parent of the removed node is
// tracked during the descent rather than stored on the node. For a
// node with two children, the in-order successor (the leftmost node of
// the right subtree) is located - appending each key examined to the
// path - its key is copied over the target's, and the successor node
// itself is unlinked. The target node object stays in place with its
// new key, which is what downstream animation expects: it references
// keys, never node identity.
//
// Removing an absent key changes nothing and reports OK=false with the
// comparison path.
func (t *Tree[T]) Remove(v T) Result[T] {
	var path []T
	n, parent := t.root, (*tree.Node[T])(nil)
	fromLeft := false

	for n != nil {
		path = append(path, n.Key)
		cmp := tree.Compare(v, n.Key)
		if cmp == tree.Equal {
			break
		}
		parent = n
		if cmp == tree.Less {
			n, fromLeft = n.Left, true
		} else {
			n, fromLeft = n.Right, false
		}
	}

	if n == nil {
		return Result[T]{
			Path:    path,
			Message: fmt.Sprintf("Value %v not found", v),
		}
	}

	switch {
	case n.Left == nil && n.Right == nil:
		t.relink(parent, fromLeft, nil)
	case n.Left == nil:
		// the spliced-in child is intentionally not appended to the
		// path: the animation ends on the node being removed, not on
		// the post-splice structure
		t.relink(parent, fromLeft, n.Right)
	case n.Right == nil:
		t.relink(parent, fromLeft, n.Left)
	default:
		sp, s := n, n.Right
		path = append(path, s.Key)
		for s.Left != nil {
			sp, s = s, s.Left
			path = append(path, s.Key)
		}
		n.Key = s.Key
		// s has no left child, so unlinking it is the one-child splice
		if sp == n {
			sp.Right = s.Right
		} else {
			sp.Left = s.Right
		}
	}
	t.size--

	return Result[T]{
		OK:      true,
		Path:    path,
		Message: fmt.Sprintf("Removed %v", v),
	}
}

// relink points the parent's slot for the removed node at child.
// A nil parent means the removed node was the root.
func (t *Tree[T]) relink(parent *tree.Node[T], fromLeft bool, child *tree.Node[T]) {
	switch {
	case parent == nil:
		t.root = child
	case fromLeft:
		parent.Left = child
	default:
		parent.Right = child
	}
}

// FindMin descends strictly left from the root, recording every key
// examined. The final path entry is the minimum.
func (t *Tree[T]) FindMin() ExtremumResult[T] {
	return t.extremum(true)
}

// FindMax descends strictly right from the root, recording every key
// examined. The final path entry is the maximum.
func (t *Tree[T]) FindMax() ExtremumResult[T] {
	return t.extremum(false)
}

func (t *Tree[T]) extremum(min bool) ExtremumResult[T] {
	if t.root == nil {
		return ExtremumResult[T]{Message: msgEmptyTree}
	}

	var path []T
	n := t.root
	for {
		path = append(path, n.Key)
		next := n.Right
		if min {
			next = n.Left
		}
		if next == nil {
			break
		}
		n = next
	}

	what := "Maximum"
	if min {
		what = "Minimum"
	}
	return ExtremumResult[T]{
		Value:   n.Key,
		OK:      true,
		Path:    path,
		Message: fmt.Sprintf("%s is %v", what, n.Key),
	}
}

// Clear drops every node. The zero Tree and a cleared Tree behave
// identically.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// Height returns the height of the tree: -1 if empty, 0 for a single
// node, otherwise 1 + the taller subtree's height.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return -1
	}
	lh, rh := height(n.Left), height(n.Right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// Do applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) Do(f func(k T) bool) {
	if t.root == nil {
		return
	}
	t.visitInOrder(t.root, f)
}

func (t *Tree[T]) visitInOrder(n *tree.Node[T], f func(k T) bool) bool {
	if n.Left != nil {
		if !t.visitInOrder(n.Left, f) {
			return false
		}
	}

	if !f(n.Key) {
		return false
	}

	if n.Right != nil {
		if !t.visitInOrder(n.Right, f) {
			return false
		}
	}

	return true
}

// NodeInfo describes one node's position in the tree without exposing
// the node itself: its key, its depth from the root, and the keys of
// its immediate children. Left and Right are nil for absent children.
type NodeInfo[T constraints.Ordered] struct {
	Value       T
	Depth       int
	Left, Right *T
}

// Walk calls f once per node in pre-order with that node's NodeInfo.
// It exists for layout collaborators that need structure (depth, child
// links) without access to the nodes themselves.
func (t *Tree[T]) Walk(f func(NodeInfo[T])) {
	walkInfo(t.root, 0, f)
}

func walkInfo[T constraints.Ordered](n *tree.Node[T], depth int, f func(NodeInfo[T])) {
	if n == nil {
		return
	}
	info := NodeInfo[T]{Value: n.Key, Depth: depth}
	if n.Left != nil {
		k := n.Left.Key
		info.Left = &k
	}
	if n.Right != nil {
		k := n.Right.Key
		info.Right = &k
	}
	f(info)
	walkInfo(n.Left, depth+1, f)
	walkInfo(n.Right, depth+1, f)
}

// String returns a string representation of the tree, drawn by
// tree.Sprint.
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root)
}
