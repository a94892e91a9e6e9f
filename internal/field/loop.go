package field

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop drives a Field one frame at a time until it is stopped or its continue
// predicate declines the next frame.
type Loop struct {
	field    *Field
	cont     func(frame uint64) bool
	frames   atomic.Uint64
	stopped  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoop wraps f. A nil cont runs until Stop.
func NewLoop(f *Field, cont func(frame uint64) bool) *Loop {
	if cont == nil {
		cont = func(uint64) bool { return true }
	}
	return &Loop{field: f, cont: cont, done: make(chan struct{})}
}

// UntilFrame returns a predicate allowing exactly n frames.
func UntilFrame(n uint64) func(uint64) bool {
	return func(frame uint64) bool { return frame < n }
}

// Field returns the animated field.
func (l *Loop) Field() *Field { return l.field }

// Frames returns the number of frames stepped so far.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool { return l.stopped.Load() }

// Stop halts the loop. Safe to call more than once and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		close(l.done)
	})
}

// Advance steps the field once. It returns false without stepping when the
// loop is stopped or the predicate rejects the next frame index; a rejected
// predicate also stops the loop.
func (l *Loop) Advance() bool {
	if l.stopped.Load() {
		return false
	}
	if !l.cont(l.frames.Load()) {
		l.Stop()
		return false
	}
	l.field.Step()
	l.frames.Add(1)
	return true
}

// Run steps and renders one frame per tick on s. It returns nil once the loop
// stops and ctx.Err() if ctx is cancelled first.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time, s Surface) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case <-ticks:
			if !l.Advance() {
				return nil
			}
			l.field.Render(s)
		}
	}
}
