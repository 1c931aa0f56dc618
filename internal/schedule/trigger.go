// ABOUTME: Coalescing trigger utility for debounced effects
// ABOUTME: Each Schedule cancels and restarts the pending timer, so a burst fires once

package schedule

import (
	"sync"
	"time"
)

// Trigger coalesces a burst of Schedule calls into one delayed
// invocation of fn: each call cancels any pending timer and restarts
// the delay, so N calls within the window produce exactly one fire.
type Trigger struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

// NewTrigger creates a trigger that runs fn after delay of quiescence.
func NewTrigger(delay time.Duration, fn func()) *Trigger {
	return &Trigger{delay: delay, fn: fn}
}

// Schedule arms the trigger, cancelling any pending fire first.
func (t *Trigger) Schedule() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	var tm *time.Timer
	tm = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		if t.timer == tm {
			t.timer = nil
		}
		t.mu.Unlock()
		t.fn()
	})
	t.timer = tm
}

// Stop cancels any pending fire. It does not wait for a fire already
// in progress.
func (t *Trigger) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Pending reports whether a fire is currently armed.
func (t *Trigger) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}
