// ABOUTME: Page session wiring scraper, tracker, cache, and resource coordinator
// ABOUTME: Runs the periodic background sync loop with bounded resource lifetime

package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/cache"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/lifecycle"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/models"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/tracker"
)

// DraftSource produces fresh article drafts, normally the site
// scraper.
type DraftSource interface {
	Page(ctx context.Context) ([]models.Draft, error)
}

// Session is the explicit per-page-session object: it owns the
// resource coordinator and the background sync loop, and is
// constructed at most once per session by the embedding layer. There
// are no ambient globals; consumers receive the session's tracker and
// cache by injection.
type Session struct {
	ID       string
	coord    *lifecycle.Coordinator
	cache    *cache.Cache
	tracker  *tracker.Tracker
	source   DraftSource
	interval time.Duration
	log      *slog.Logger

	wg      sync.WaitGroup
	started bool
}

// New creates a session. The restore hook is registered immediately:
// coming back from a suspended navigation invalidates the cache and
// triggers a fresh sync.
func New(tr *tracker.Tracker, ca *cache.Cache, source DraftSource, interval time.Duration) *Session {
	s := &Session{
		ID:       uuid.New().String(),
		coord:    lifecycle.NewCoordinator(),
		cache:    ca,
		tracker:  tr,
		source:   source,
		interval: interval,
		log:      slog.Default(),
	}
	s.coord.OnRestore(func() {
		s.cache.Invalidate()
		if s.started {
			s.syncOnce(s.coord.Context())
		}
	})
	return s
}

// Coordinator exposes the session's resource coordinator so the UI
// layer can scope its own timers and listeners to it.
func (s *Session) Coordinator() *lifecycle.Coordinator {
	return s.coord
}

// Start begins the periodic sync loop: one immediate pass, then one
// per interval until teardown. The loop is tracked as an observer so
// the coordinator bounds its lifetime.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true

	ctx := s.coord.Context()
	s.syncOnce(ctx)

	ticker := time.NewTicker(s.interval)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.syncOnce(ctx)
			}
		}
	}()
	s.coord.TrackObserver("sync-loop", lifecycle.ObserverFunc(ticker.Stop))
}

func (s *Session) syncOnce(ctx context.Context) {
	drafts, err := s.source.Page(ctx)
	if err != nil {
		s.log.Warn("scrape failed", "session", s.ID, "error", err)
		return
	}

	added, err := s.tracker.SyncNew(ctx, drafts)
	if err != nil {
		s.log.Warn("sync failed", "session", s.ID, "error", err)
		return
	}
	if added > 0 {
		s.log.Info("synced new articles", "session", s.ID, "added", added)
	}
}

// Restore signals a restore-from-suspended-navigation event.
func (s *Session) Restore() {
	s.coord.Restore()
}

// Close tears the session down: the sync loop stops, every tracked
// resource is released, and any pending cache invalidation is
// cancelled. Safe to call more than once.
func (s *Session) Close() {
	s.coord.Teardown()
	s.wg.Wait()
	s.cache.Close()
}
