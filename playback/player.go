// Package playback drives a generated frame sequence: either cursor
// style (step and seek, Player) or channel style at a fixed pace
// (CoPlay). It adds no state of its own beyond the cursor position;
// every frame is self-contained, which is what makes Seek possible.
package playback

import (
	"go.lepak.sg/bstviz/anim"
	"golang.org/x/exp/constraints"
)

// Player is a cursor over a frame sequence.
// The usage should be pretty familiar:
//
//	p := playback.NewPlayer(frames)
//	for f, ok := p.Next(); ok; f, ok = p.Next() {
//		... render f ...
//	}
//
// The player may be abandoned, rewound or sought at any time.
type Player[T constraints.Ordered] struct {
	frames []anim.Frame[T]
	pos    int
}

// NewPlayer returns a player positioned before the first frame.
// The frame slice is not copied; generate a fresh sequence per
// operation instead of mutating one.
func NewPlayer[T constraints.Ordered](frames []anim.Frame[T]) *Player[T] {
	return &Player[T]{
		frames: frames,
	}
}

// Len returns the total number of frames.
func (p *Player[T]) Len() int {
	return len(p.frames)
}

// Pos returns the index of the frame most recently returned by Next,
// or -1 if Next has not succeeded since the last Rewind.
func (p *Player[T]) Pos() int {
	return p.pos - 1
}

// Frame returns frame i without moving the cursor.
// i must be in [0, Len()).
func (p *Player[T]) Frame(i int) anim.Frame[T] {
	return p.frames[i]
}

// Next returns the next frame in order. ok is false once the sequence
// is exhausted; further calls keep returning false.
func (p *Player[T]) Next() (f anim.Frame[T], ok bool) {
	if p.pos >= len(p.frames) {
		return f, false
	}
	f = p.frames[p.pos]
	p.pos++
	return f, true
}

// Seek positions the cursor so that the next call to Next returns
// frame i. It reports whether i was in range; out-of-range leaves the
// cursor alone.
func (p *Player[T]) Seek(i int) bool {
	if i < 0 || i >= len(p.frames) {
		return false
	}
	p.pos = i
	return true
}

// Rewind positions the cursor before the first frame.
func (p *Player[T]) Rewind() {
	p.pos = 0
}
