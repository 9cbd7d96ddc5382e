package playback

import (
	"time"

	"go.lepak.sg/bstviz/anim"
	"golang.org/x/exp/constraints"
)

// CoPlayer is returned from CoPlay and abstracts communication with
// the playing goroutine.
type CoPlayer[T constraints.Ordered] struct {
	frames <-chan anim.Frame[T]
	stop   chan<- struct{}
}

// Frames returns the channel on which the frames will be delivered.
// It is closed after the last frame, or after Stop.
func (c CoPlayer[T]) Frames() <-chan anim.Frame[T] {
	return c.frames
}

// Stop stops the playback. This must not be called more than once.
// If the Frames channel is closed, this doesn't need to be called.
func (c CoPlayer[T]) Stop() {
	close(c.stop)
}

// CoPlay starts goroutine-backed playback of frames.
// The usage is as follows:
//
//	co := playback.CoPlay(frames, 500*time.Millisecond)
//	for f := range co.Frames() {
//		... render f ...
//		if some stopping condition {
//			co.Stop()
//		}
//	}
//
// A positive interval paces delivery to at most one frame per tick of
// that interval. A zero interval delivers frames as fast as the
// receiver drains them.
//
// Note: CoPlay starts a goroutine, which exits when either Stop is
// called or the sequence is exhausted. If you follow the usage above,
// the goroutine will not live beyond the end of the for-range loop.
func CoPlay[T constraints.Ordered](
	frames []anim.Frame[T], interval time.Duration) CoPlayer[T] {
	out := make(chan anim.Frame[T])
	stop := make(chan struct{})

	go func(out chan<- anim.Frame[T], stop <-chan struct{}) {
		defer close(out)

		var tick <-chan time.Time
		if interval > 0 {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			tick = ticker.C
		}

		for _, f := range frames {
			if tick != nil {
				select {
				case <-tick:
				case <-stop:
					return
				}
			}

			select {
			case out <- f:
			case <-stop:
				return
			}
		}
	}(out, stop)

	return CoPlayer[T]{
		frames: out,
		stop:   stop,
	}
}
