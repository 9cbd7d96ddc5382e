package anim

import (
	"go.lepak.sg/bstviz/tree/bst"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// builder accumulates the generator state and snapshots it into a new
// frame on every emit. All mutable state lives here; nothing escapes
// except the copied frames.
type builder[T constraints.Ordered] struct {
	visited []T
	stack   []T
	edges   []Edge
	frames  []Frame[T]
}

func (b *builder[T]) emit(current *T, pointer *Coord) {
	b.frames = append(b.frames, Frame[T]{
		Current:   clone(current),
		Pointer:   clone(pointer),
		Visited:   snapshot(b.visited),
		PathStack: snapshot(b.stack),
		Edges:     snapshot(b.edges),
	})
}

func clone[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// snapshot copies the accumulator, canonicalizing empty to nil so that
// frames with the same content are deeply equal regardless of how the
// accumulator got there.
func snapshot[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// FromPath generates the frame sequence for a descent trace (insert,
// search, remove, find-min, find-max). The sequence opens with a blank
// frame; then each path key contributes an arrival frame (key marked
// visited, pointer moved onto it) and, if another key follows, a
// second frame growing the edge toward it - edge growth is its own
// visual step, decoupled from arrival. If finalHighlight is non-nil,
// one trailing frame highlights exactly that key without touching the
// visited or edge accumulation.
//
// Path keys missing from lookup are skipped; edges connect the present
// keys that remain.
func FromPath[T constraints.Ordered](path []T, lookup Lookup[T], finalHighlight *T) []Frame[T] {
	var b builder[T]
	b.emit(nil, nil)

	present := make([]T, 0, len(path))
	for _, v := range path {
		if _, ok := lookup[v]; ok {
			present = append(present, v)
		}
	}

	for i, v := range present {
		at := lookup[v]
		b.visited = append(b.visited, v)
		b.emit(&v, &at)

		if i+1 < len(present) {
			b.edges = append(b.edges, Edge{From: at, To: lookup[present[i+1]]})
			b.emit(&v, &at)
		}
	}

	if finalHighlight != nil {
		if at, ok := lookup[*finalHighlight]; ok {
			b.emit(finalHighlight, &at)
		}
	}

	return b.frames
}

// FromEvents generates the frame sequence for a detailed traversal's
// event log. Enter pushes the key onto the path stack and moves the
// pointer onto it; Visit appends the key to the visited list with the
// pointer staying put; Exit pops the key and moves the pointer back to
// the new stack top, or clears it once the root has been exited. A
// trailing completion frame (pointer cleared, stack empty) marks the
// end of the animation distinctly from any mid-traversal state.
//
// Keys missing from lookup are skipped without emitting a frame; since
// a skipped Enter is matched by an equally skipped Exit, the stack
// stays consistent.
func FromEvents[T constraints.Ordered](steps []bst.Step[T], lookup Lookup[T]) []Frame[T] {
	var b builder[T]
	b.emit(nil, nil)

	for _, s := range steps {
		at, ok := lookup[s.Value]
		if !ok {
			continue
		}

		switch s.Action {
		case bst.Enter:
			v := s.Value
			b.stack = append(b.stack, v)
			b.emit(&v, &at)
		case bst.Visit:
			v := s.Value
			b.visited = append(b.visited, v)
			b.emit(&v, &at)
		case bst.Exit:
			if n := len(b.stack); n > 0 {
				b.stack = b.stack[:n-1]
			}
			if n := len(b.stack); n > 0 {
				// anything on the stack passed the lookup on Enter
				top := b.stack[n-1]
				topAt := lookup[top]
				b.emit(&top, &topAt)
			} else {
				b.emit(nil, nil)
			}
		default:
			panic("unreachable")
		}
	}

	b.stack = b.stack[:0]
	b.emit(nil, nil)

	return b.frames
}
