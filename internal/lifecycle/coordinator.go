// ABOUTME: Resource coordinator owning timers, observers, and event listeners
// ABOUTME: Guarantees bounded resource lifetime per page session with one teardown

package lifecycle

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultResourceBound is the tracked-resource count past which the
	// audit assumes a leak and sweeps everything.
	DefaultResourceBound = 100

	// DefaultAuditInterval is how often the self-audit runs.
	DefaultAuditInterval = time.Minute
)

// Observer is anything with a lifetime the coordinator should bound,
// e.g. a page-mutation watcher or a polling loop.
type Observer interface {
	Stop()
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func()

func (f ObserverFunc) Stop() { f() }

// Coordinator tracks every timer, observer, and event listener the
// reactive layer creates and releases all of them exactly once at
// teardown. It also carries the shared cancellation context any
// listener registration can scope itself to, and periodically audits
// tracked-resource counts against a sane bound.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    *slog.Logger
	bound  int

	mu        sync.Mutex
	timers    map[string]*time.Timer
	observers map[string]Observer
	listeners map[string]func(event string)
	onRestore []func()
	audit     *time.Ticker
	auditDone chan struct{}
	done      bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithResourceBound overrides the audit's leak threshold.
func WithResourceBound(n int) Option {
	return func(c *Coordinator) { c.bound = n }
}

// NewCoordinator creates a coordinator for one page session and starts
// its periodic self-audit.
func NewCoordinator(opts ...Option) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		ctx:       ctx,
		cancel:    cancel,
		log:       slog.Default(),
		bound:     DefaultResourceBound,
		timers:    make(map[string]*time.Timer),
		observers: make(map[string]Observer),
		listeners: make(map[string]func(event string)),
		auditDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.audit = time.NewTicker(DefaultAuditInterval)
	go func() {
		for {
			select {
			case <-c.audit.C:
				c.auditResources()
			case <-c.auditDone:
				return
			}
		}
	}()

	return c
}

// Context is the shared cancellation token for the session. It is
// cancelled on teardown, so any registration scoped to it cannot
// outlive its page.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// TrackTimer registers a one-shot timer under id, replacing (and
// stopping) any timer previously tracked under the same id. After the
// timer fires it is forgotten.
func (c *Coordinator) TrackTimer(id string, d time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return
	}
	if prev, ok := c.timers[id]; ok {
		prev.Stop()
	}
	c.timers[id] = time.AfterFunc(d, func() {
		c.mu.Lock()
		delete(c.timers, id)
		c.mu.Unlock()
		fn()
	})
}

// ClearTimer stops and forgets a tracked timer.
func (c *Coordinator) ClearTimer(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
}

// TrackObserver registers an observer for release at teardown,
// stopping any observer previously tracked under the same id.
func (c *Coordinator) TrackObserver(id string, o Observer) {
	c.mu.Lock()
	prev := c.observers[id]
	if c.done {
		c.mu.Unlock()
		o.Stop()
		return
	}
	c.observers[id] = o
	c.mu.Unlock()
	if prev != nil {
		prev.Stop()
	}
}

// AddListener registers a document-level event listener under id.
func (c *Coordinator) AddListener(id string, fn func(event string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return
	}
	c.listeners[id] = fn
}

// RemoveListener unregisters a listener.
func (c *Coordinator) RemoveListener(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.listeners, id)
}

// Emit dispatches an event to every registered listener.
func (c *Coordinator) Emit(event string) {
	c.mu.Lock()
	fns := make([]func(string), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn(event)
	}
}

// OnRestore registers a hook for restore-from-suspended-navigation
// events.
func (c *Coordinator) OnRestore(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRestore = append(c.onRestore, fn)
}

// Restore signals that the page session came back from a suspended
// navigation: registered hooks run so the caller can invalidate its
// cache and rebuild from fresh data.
func (c *Coordinator) Restore() {
	c.mu.Lock()
	hooks := append([]func(){}, c.onRestore...)
	done := c.done
	c.mu.Unlock()
	if done {
		return
	}
	for _, fn := range hooks {
		fn()
	}
}

// ResourceCount returns the number of currently tracked timers,
// observers, and listeners.
func (c *Coordinator) ResourceCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers) + len(c.observers) + len(c.listeners)
}

// auditResources sweeps everything when the tracked count exceeds the
// bound. A long-lived session that keeps accreting resources is a
// leak; clearing is safer than unbounded growth.
func (c *Coordinator) auditResources() {
	c.mu.Lock()
	count := len(c.timers) + len(c.observers) + len(c.listeners)
	if count <= c.bound {
		c.mu.Unlock()
		return
	}
	c.log.Warn("tracked resources exceed bound, sweeping", "count", count, "bound", c.bound)
	timers, observers := c.takeLocked()
	c.mu.Unlock()
	release(timers, observers)
}

// Teardown releases every tracked resource and cancels the shared
// context. It is safe to call more than once; only the first call has
// any effect.
func (c *Coordinator) Teardown() {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return
	}
	c.done = true
	timers, observers := c.takeLocked()
	c.mu.Unlock()

	release(timers, observers)
	c.audit.Stop()
	close(c.auditDone)
	c.cancel()
}

// takeLocked empties the resource maps and hands the stoppable
// resources back so they can be released outside the lock, where an
// observer's Stop is free to call back into the coordinator.
func (c *Coordinator) takeLocked() ([]*time.Timer, []Observer) {
	timers := make([]*time.Timer, 0, len(c.timers))
	for id, t := range c.timers {
		timers = append(timers, t)
		delete(c.timers, id)
	}
	observers := make([]Observer, 0, len(c.observers))
	for id, o := range c.observers {
		observers = append(observers, o)
		delete(c.observers, id)
	}
	for id := range c.listeners {
		delete(c.listeners, id)
	}
	return timers, observers
}

func release(timers []*time.Timer, observers []Observer) {
	for _, t := range timers {
		t.Stop()
	}
	for _, o := range observers {
		o.Stop()
	}
}
