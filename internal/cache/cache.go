// ABOUTME: Time-bounded in-memory snapshot of all tracked article records
// ABOUTME: Point lookups, optimistic patching, and debounced invalidation

package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/models"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/schedule"
)

const (
	// DefaultTTL bounds how long a snapshot is served without a
	// store round-trip.
	DefaultTTL = 30 * time.Second

	// DefaultInvalidateDelay is the quiescence window that coalesces
	// a burst of invalidations into one clear.
	DefaultInvalidateDelay = 100 * time.Millisecond
)

// Loader supplies the full record mapping, normally the durable store
// adapter.
type Loader interface {
	All(ctx context.Context) (map[string]*models.Article, error)
}

// Cache holds a lazily rebuilt snapshot of all article records keyed
// by normalized URL. A snapshot is served for TTL, patched in place
// after local writes, and cleared by debounced invalidation. The
// snapshot is owned by the cache alone; no other component mutates it.
type Cache struct {
	loader Loader
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger

	mu       sync.Mutex
	snapshot map[string]*models.Article
	builtAt  time.Time

	inval *schedule.Trigger
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the snapshot lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithInvalidateDelay overrides the invalidation debounce window.
func WithInvalidateDelay(d time.Duration) Option {
	return func(c *Cache) {
		c.inval = schedule.NewTrigger(d, c.clear)
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty cache over the given loader.
func New(loader Loader, opts ...Option) *Cache {
	c := &Cache{
		loader: loader,
		ttl:    DefaultTTL,
		now:    time.Now,
		log:    slog.Default(),
	}
	c.inval = schedule.NewTrigger(DefaultInvalidateDelay, c.clear)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the full record mapping. A fresh snapshot is served
// as-is; an expired or absent one triggers a rebuild from the loader.
// On rebuild failure the cache resets to empty and the error is
// returned, so stale data is never hidden behind a failed fetch and
// the next Get retries cleanly.
//
// Concurrent callers that both observe an expired snapshot each fetch
// independently; the last fetch to resolve wins the snapshot slot.
// Correctness does not rely on single-flight deduplication.
func (c *Cache) Get(ctx context.Context) (map[string]*models.Article, error) {
	c.mu.Lock()
	if c.snapshot != nil && c.now().Sub(c.builtAt) < c.ttl {
		snap := c.snapshot
		c.mu.Unlock()
		return snap, nil
	}
	c.mu.Unlock()

	articles, err := c.loader.All(ctx)
	if err != nil {
		c.mu.Lock()
		c.snapshot = nil
		c.mu.Unlock()
		return nil, err
	}

	c.mu.Lock()
	c.snapshot = articles
	c.builtAt = c.now()
	c.mu.Unlock()
	return articles, nil
}

// Lookup returns the record for a normalized URL from the currently
// held snapshot, or nil when no snapshot exists or the key is absent.
// It never triggers a rebuild; this is the non-blocking hot path.
func (c *Cache) Lookup(url string) *models.Article {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot == nil {
		return nil
	}
	return c.snapshot[url]
}

// Patch updates one entry of the held snapshot in place, or deletes it
// when article is nil. The snapshot timestamp is untouched and no
// rebuild is forced: this is the optimistic-update path taken right
// after a local write. Patching with no snapshot held is a no-op.
func (c *Cache) Patch(url string, article *models.Article) {
	if url == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot == nil {
		return
	}
	if article == nil {
		delete(c.snapshot, url)
		return
	}
	c.snapshot[url] = article
}

// Invalidate schedules a snapshot clear after a quiescence delay.
// Repeated calls within the window coalesce into a single clear, so a
// burst of writes costs one rebuild, not many.
func (c *Cache) Invalidate() {
	c.inval.Schedule()
}

// Close cancels any pending invalidation.
func (c *Cache) Close() {
	c.inval.Stop()
}

func (c *Cache) clear() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
	c.log.Debug("article cache invalidated")
}
