package practice

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultAutoAdvance is the delay between a correct answer and the
// automatic move to the next item.
const DefaultAutoAdvance = 800 * time.Millisecond

// Token ties a scheduled advance to one item of one session.
type Token struct {
	SessionID string
	Position  int
}

// Deferred is a cancellable task scheduled on a timer. Done is closed
// exactly once, either when the timer fires or when the task is cancelled.
type Deferred struct {
	Token Token

	timer *time.Timer
	done  chan struct{}
	once  sync.Once
	fired atomic.Bool
}

func schedule(tok Token, delay time.Duration) *Deferred {
	d := &Deferred{Token: tok, done: make(chan struct{})}
	d.timer = time.AfterFunc(delay, func() { d.finish(true) })
	return d
}

// Done returns a channel that is closed when the task fires or is cancelled.
func (d *Deferred) Done() <-chan struct{} {
	return d.done
}

// Fired reports whether the timer ran out before any cancellation.
func (d *Deferred) Fired() bool {
	return d.fired.Load()
}

// Cancel stops the task if it has not fired yet. It is safe to call more
// than once.
func (d *Deferred) Cancel() {
	d.timer.Stop()
	d.finish(false)
}

func (d *Deferred) finish(fired bool) {
	d.once.Do(func() {
		d.fired.Store(fired)
		close(d.done)
	})
}
