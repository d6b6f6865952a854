package countdown

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the refresh rate of a displayed countdown
const DefaultInterval = time.Second

// Timer recomputes a countdown on a fixed interval for as long as the listing
// it belongs to is displayed. One Timer serves one listing view.
//
// emit runs on the timer's goroutine and must not call Stop or Reset.
type Timer struct {
	mu       sync.Mutex
	parent   context.Context
	style    Style
	interval time.Duration
	now      func() time.Time
	emit     func(Tick)

	end    time.Time
	cancel context.CancelFunc
	done   chan struct{}
}

// Option customises a Timer
type Option func(*Timer)

// WithInterval overrides the 1s refresh rate
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithClock overrides the source of "now"
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		if now != nil {
			t.now = now
		}
	}
}

// Start emits the first tick immediately, then one per interval, until the
// auction ends, ctx is cancelled, or Stop is called.
func Start(ctx context.Context, end time.Time, style Style, emit func(Tick), opts ...Option) *Timer {
	t := &Timer{
		parent:   ctx,
		style:    style,
		interval: DefaultInterval,
		now:      time.Now,
		emit:     emit,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.mu.Lock()
	t.runLocked(end)
	t.mu.Unlock()
	return t
}

// Reset points the timer at a new end timestamp. The running ticker is
// released before the new one starts.
func (t *Timer) Reset(end time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	if t.parent.Err() != nil {
		return
	}
	t.runLocked(end)
}

// Stop releases the ticker and waits for the timer goroutine to exit.
// No tick is emitted after Stop returns. Safe to call more than once.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// End returns the end timestamp currently being counted down to
func (t *Timer) End() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.end
}

// Done is closed when the current run exits
func (t *Timer) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

func (t *Timer) runLocked(end time.Time) {
	ctx, cancel := context.WithCancel(t.parent)
	done := make(chan struct{})

	t.end = end
	t.cancel = cancel
	t.done = done

	go t.loop(ctx, end, done)
}

func (t *Timer) stopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel = nil
}

func (t *Timer) loop(ctx context.Context, end time.Time, done chan struct{}) {
	defer close(done)

	if t.fire(ctx, end) {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if t.fire(ctx, end) {
				return
			}
		}
	}
}

// fire emits one tick and reports whether the loop should exit
func (t *Timer) fire(ctx context.Context, end time.Time) bool {
	if ctx.Err() != nil {
		return true
	}
	tick := Remaining(end, t.now(), t.style)
	t.emit(tick)
	return tick.Ended
}
