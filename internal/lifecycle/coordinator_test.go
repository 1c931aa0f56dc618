// ABOUTME: Tests for the resource coordinator
// ABOUTME: Teardown release guarantees, timer replacement, listeners, restore hooks

package lifecycle

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTeardownReleasesEverythingOnce(t *testing.T) {
	c := NewCoordinator()

	var timerFired atomic.Int32
	c.TrackTimer("pending", time.Hour, func() { timerFired.Add(1) })

	var stops atomic.Int32
	c.TrackObserver("watcher", ObserverFunc(func() { stops.Add(1) }))
	c.AddListener("filter-change", func(string) {})

	if got := c.ResourceCount(); got != 3 {
		t.Fatalf("expected 3 tracked resources, got %d", got)
	}

	c.Teardown()
	c.Teardown() // second call is a no-op

	if got := c.ResourceCount(); got != 0 {
		t.Errorf("expected nothing tracked after teardown, got %d", got)
	}
	if got := stops.Load(); got != 1 {
		t.Errorf("observer must be stopped exactly once, got %d", got)
	}
	if timerFired.Load() != 0 {
		t.Error("pending timer must not fire after teardown")
	}

	select {
	case <-c.Context().Done():
	default:
		t.Error("teardown must cancel the shared context")
	}
}

func TestRegistrationAfterTeardownIsInert(t *testing.T) {
	c := NewCoordinator()
	c.Teardown()

	var stops atomic.Int32
	c.TrackTimer("late", time.Millisecond, func() { stops.Add(-1) })
	c.TrackObserver("late", ObserverFunc(func() { stops.Add(1) }))
	c.AddListener("late", func(string) {})

	// A late observer is stopped immediately instead of being tracked.
	if got := stops.Load(); got != 1 {
		t.Errorf("late observer should be stopped on registration, got %d", got)
	}
	if got := c.ResourceCount(); got != 0 {
		t.Errorf("torn-down coordinator must not accept resources, got %d", got)
	}
}

func TestTrackTimerReplacesSameID(t *testing.T) {
	c := NewCoordinator()
	defer c.Teardown()

	var first, second atomic.Int32
	c.TrackTimer("debounce", 10*time.Millisecond, func() { first.Add(1) })
	c.TrackTimer("debounce", 10*time.Millisecond, func() { second.Add(1) })

	time.Sleep(30 * time.Millisecond)
	if first.Load() != 0 {
		t.Error("replaced timer must not fire")
	}
	if second.Load() != 1 {
		t.Errorf("replacement timer should fire once, got %d", second.Load())
	}
	if got := c.ResourceCount(); got != 0 {
		t.Errorf("fired timer should be forgotten, got %d tracked", got)
	}
}

func TestClearTimer(t *testing.T) {
	c := NewCoordinator()
	defer c.Teardown()

	var fired atomic.Int32
	c.TrackTimer("pending", 10*time.Millisecond, func() { fired.Add(1) })
	c.ClearTimer("pending")

	time.Sleep(30 * time.Millisecond)
	if fired.Load() != 0 {
		t.Error("cleared timer must not fire")
	}
}

func TestEmitReachesListeners(t *testing.T) {
	c := NewCoordinator()
	defer c.Teardown()

	var got atomic.Value
	c.AddListener("filter-change", func(event string) { got.Store(event) })
	c.Emit("filter-change")
	if got.Load() != "filter-change" {
		t.Errorf("listener not invoked, got %v", got.Load())
	}

	c.RemoveListener("filter-change")
	got.Store("")
	c.Emit("filter-change")
	if got.Load() != "" {
		t.Error("removed listener must not be invoked")
	}
}

func TestRestoreRunsHooks(t *testing.T) {
	c := NewCoordinator()
	defer c.Teardown()

	var runs atomic.Int32
	c.OnRestore(func() { runs.Add(1) })

	c.Restore()
	c.Restore()
	if got := runs.Load(); got != 2 {
		t.Errorf("each restore should run the hook, got %d", got)
	}

	c.Teardown()
	c.Restore()
	if got := runs.Load(); got != 2 {
		t.Errorf("restore after teardown must be inert, got %d", got)
	}
}

func TestAuditSweepsPastBound(t *testing.T) {
	c := NewCoordinator(WithResourceBound(2))
	defer c.Teardown()

	for _, id := range []string{"a", "b", "c"} {
		c.AddListener(id, func(string) {})
	}
	if got := c.ResourceCount(); got != 3 {
		t.Fatalf("expected 3 tracked, got %d", got)
	}

	c.auditResources()
	if got := c.ResourceCount(); got != 0 {
		t.Errorf("audit past bound should sweep everything, got %d", got)
	}
}

func TestAuditLeavesBoundedSessionsAlone(t *testing.T) {
	c := NewCoordinator(WithResourceBound(10))
	defer c.Teardown()

	c.AddListener("a", func(string) {})
	c.auditResources()
	if got := c.ResourceCount(); got != 1 {
		t.Errorf("audit under bound must not sweep, got %d", got)
	}
}
