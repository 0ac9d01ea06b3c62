// Package frameloop re-invokes a frame callback on every display tick until
// it is stopped.
package frameloop

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrStopped is returned by Tick and Run once the loop has been stopped.
var ErrStopped = errors.New("frameloop: stopped")

// Loop is a cancellable frame scheduler. Stop may be called from any
// goroutine; the frame callback itself runs on the ticking goroutine only.
type Loop struct {
	frame func()

	once sync.Once
	done chan struct{}

	mu     sync.Mutex
	frames uint64
	paused bool
}

// New returns a loop that calls frame once per tick.
func New(frame func()) *Loop {
	return &Loop{
		frame: frame,
		done:  make(chan struct{}),
	}
}

// Tick runs one frame, or returns ErrStopped without running it. A paused
// loop skips the frame and returns nil.
func (l *Loop) Tick() error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}
	if l.Paused() {
		return nil
	}
	l.frame()
	l.mu.Lock()
	l.frames++
	l.mu.Unlock()
	return nil
}

// Run ticks once per value received from ticks. It returns ErrStopped after
// Stop, ctx.Err() when ctx ends, and nil when ticks is closed.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-l.done:
			return ErrStopped
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := l.Tick(); err != nil {
				return err
			}
		}
	}
}

// Stop cancels the pending reschedule. It is safe to call more than once.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.done) })
}

// SetPaused suspends or resumes frames without stopping the loop.
func (l *Loop) SetPaused(p bool) {
	l.mu.Lock()
	l.paused = p
	l.mu.Unlock()
}

// TogglePaused flips the pause state and returns the new one.
func (l *Loop) TogglePaused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = !l.paused
	return l.paused
}

// Paused reports whether frames are suspended.
func (l *Loop) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// Done is closed when the loop is stopped.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Stopped reports whether Stop was called.
func (l *Loop) Stopped() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Frames returns the number of frames run so far.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}
