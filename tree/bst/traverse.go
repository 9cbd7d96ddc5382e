package bst

import (
	"fmt"

	"go.lepak.sg/bstviz/tree"
	"golang.org/x/exp/constraints"
)

// Action tags a traversal step. Every node produces exactly one Enter,
// one Visit and one Exit per detailed traversal; only the position of
// Visit between Enter and Exit distinguishes the traversal orders.
type Action uint8

const (
	// Enter means the node was reached for the first time going down.
	Enter Action = iota
	// Visit means the node's key was logically emitted.
	Visit
	// Exit means control returned from the node to its caller.
	Exit
)

func (a Action) String() string {
	switch a {
	case Enter:
		return "enter"
	case Visit:
		return "visit"
	case Exit:
		return "exit"
	default:
		return "<invalid bst.Action>"
	}
}

// Step is one record of a detailed traversal's event log.
type Step[T constraints.Ordered] struct {
	Value  T
	Action Action
}

// TraversalResult is the outcome of a plain traversal: the keys in
// the traversal's own visit order.
type TraversalResult[T constraints.Ordered] struct {
	Values  []T
	Message string
}

// DetailedResult is the outcome of a detailed traversal: the keys in
// visit order plus the full enter/visit/exit event log.
type DetailedResult[T constraints.Ordered] struct {
	Values  []T
	Steps   []Step[T]
	Message string
}

type order uint8

const (
	inOrder order = iota
	preOrder
	postOrder
)

func (o order) String() string {
	switch o {
	case inOrder:
		return "In-order"
	case preOrder:
		return "Pre-order"
	case postOrder:
		return "Post-order"
	default:
		return "<invalid bst.order>"
	}
}

// InOrder returns the keys in ascending order (left, root, right).
func (t *Tree[T]) InOrder() TraversalResult[T] {
	return t.traverse(inOrder)
}

// PreOrder returns the keys root-first (root, left, right).
func (t *Tree[T]) PreOrder() TraversalResult[T] {
	return t.traverse(preOrder)
}

// PostOrder returns the keys root-last (left, right, root).
func (t *Tree[T]) PostOrder() TraversalResult[T] {
	return t.traverse(postOrder)
}

// InOrderDetailed is InOrder plus the event log:
// enter(n), recurse left, visit(n), recurse right, exit(n).
func (t *Tree[T]) InOrderDetailed() DetailedResult[T] {
	return t.traverseDetailed(inOrder)
}

// PreOrderDetailed is PreOrder plus the event log:
// enter(n), visit(n), recurse left, recurse right, exit(n).
func (t *Tree[T]) PreOrderDetailed() DetailedResult[T] {
	return t.traverseDetailed(preOrder)
}

// PostOrderDetailed is PostOrder plus the event log:
// enter(n), recurse left, recurse right, visit(n), exit(n).
func (t *Tree[T]) PostOrderDetailed() DetailedResult[T] {
	return t.traverseDetailed(postOrder)
}

func (t *Tree[T]) traverse(o order) TraversalResult[T] {
	if t.root == nil {
		return TraversalResult[T]{Message: msgEmptyTree}
	}
	values := walk(t.root, o, nil)
	return TraversalResult[T]{
		Values:  values,
		Message: fmt.Sprintf("%s traversal visited %d nodes", o, len(values)),
	}
}

func (t *Tree[T]) traverseDetailed(o order) DetailedResult[T] {
	if t.root == nil {
		return DetailedResult[T]{Message: msgEmptyTree}
	}
	values, steps := walkDetailed(t.root, o, nil, nil)
	return DetailedResult[T]{
		Values:  values,
		Steps:   steps,
		Message: fmt.Sprintf("%s traversal visited %d nodes", o, len(values)),
	}
}

// walk threads the accumulator through the recursion's return value
// instead of capturing it in a closure, so partial results are plain
// data at every level.
func walk[T constraints.Ordered](n *tree.Node[T], o order, values []T) []T {
	if n == nil {
		return values
	}
	switch o {
	case inOrder:
		values = walk(n.Left, o, values)
		values = append(values, n.Key)
		values = walk(n.Right, o, values)
	case preOrder:
		values = append(values, n.Key)
		values = walk(n.Left, o, values)
		values = walk(n.Right, o, values)
	case postOrder:
		values = walk(n.Left, o, values)
		values = walk(n.Right, o, values)
		values = append(values, n.Key)
	default:
		panic("unreachable")
	}
	return values
}

func walkDetailed[T constraints.Ordered](
	n *tree.Node[T], o order, values []T, steps []Step[T]) ([]T, []Step[T]) {
	if n == nil {
		return values, steps
	}

	steps = append(steps, Step[T]{Value: n.Key, Action: Enter})

	switch o {
	case inOrder:
		values, steps = walkDetailed(n.Left, o, values, steps)
		values = append(values, n.Key)
		steps = append(steps, Step[T]{Value: n.Key, Action: Visit})
		values, steps = walkDetailed(n.Right, o, values, steps)
	case preOrder:
		values = append(values, n.Key)
		steps = append(steps, Step[T]{Value: n.Key, Action: Visit})
		values, steps = walkDetailed(n.Left, o, values, steps)
		values, steps = walkDetailed(n.Right, o, values, steps)
	case postOrder:
		values, steps = walkDetailed(n.Left, o, values, steps)
		values, steps = walkDetailed(n.Right, o, values, steps)
		values = append(values, n.Key)
		steps = append(steps, Step[T]{Value: n.Key, Action: Visit})
	default:
		panic("unreachable")
	}

	steps = append(steps, Step[T]{Value: n.Key, Action: Exit})
	return values, steps
}
