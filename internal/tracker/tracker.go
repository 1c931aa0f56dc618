// ABOUTME: Synchronization engine merging scraped drafts into durable read-state
// ABOUTME: Mark read/unread, background sync, and cache-consistent write paths

package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/cache"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/merge"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/models"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/store"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/urlnorm"
)

// PageContext carries the page-derived fields used when a read toggle
// targets an article that is not tracked yet. The UI layer translates
// any DOM reads into this plain struct before calling the tracker.
type PageContext struct {
	Title         string
	PublishedDate string
	DateText      string
}

// Tracker is the write path for all durable article state. Reads go
// through the cache; every local write is followed by an optimistic
// cache patch plus a debounced invalidation, so readers see the fresh
// single-record state immediately and a full rebuild arrives later as
// a consistency backstop.
type Tracker struct {
	store   *store.Store
	cache   *cache.Cache
	baseURL string
	now     func() time.Time
	log     *slog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a tracker over the given store and cache. baseURL is the
// site origin relative article URLs resolve against.
func New(st *store.Store, ca *cache.Cache, baseURL string, opts ...Option) *Tracker {
	t := &Tracker{
		store:   st,
		cache:   ca,
		baseURL: baseURL,
		now:     time.Now,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Articles returns the full record mapping through the cache.
func (t *Tracker) Articles(ctx context.Context) (map[string]*models.Article, error) {
	return t.cache.Get(ctx)
}

// Article returns one record, serving from the held snapshot when
// possible and falling back to the store.
func (t *Tracker) Article(ctx context.Context, rawURL string) (*models.Article, error) {
	url := urlnorm.Normalize(rawURL, t.baseURL)
	if url == "" {
		return nil, nil
	}
	if article := t.cache.Lookup(url); article != nil {
		return article, nil
	}
	return t.store.Article(ctx, url)
}

// SyncNew merges freshly scraped drafts into the store and returns how
// many articles were newly added. Drafts without a valid URL and title
// are dropped with a diagnostic log; drafts for URLs already tracked
// are ignored so sync can never overwrite read-state. The surviving
// drafts are written in one batch.
func (t *Tracker) SyncNew(ctx context.Context, drafts []models.Draft) (int, error) {
	if len(drafts) == 0 {
		return 0, nil
	}

	existing, err := t.cache.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load tracked articles: %w", err)
	}

	now := t.now()
	var added []*models.Article
	seen := make(map[string]bool, len(drafts))
	for _, draft := range drafts {
		draft.URL = urlnorm.Normalize(draft.URL, t.baseURL)
		if !draft.Valid() {
			t.log.Debug("dropping invalid draft", "url", draft.URL, "title", draft.Title)
			continue
		}
		if _, tracked := existing[draft.URL]; tracked || seen[draft.URL] {
			continue
		}
		seen[draft.URL] = true
		added = append(added, merge.ForSync(nil, draft, now))
	}

	if len(added) == 0 {
		return 0, nil
	}
	if err := t.store.SaveAll(ctx, added); err != nil {
		return 0, fmt.Errorf("save new articles: %w", err)
	}

	for _, article := range added {
		t.cache.Patch(article.URL, article)
	}
	t.cache.Invalidate()
	return len(added), nil
}

// MarkRead marks an article as read now, creating the record from the
// page context if it is not tracked yet, and returns the saved record.
func (t *Tracker) MarkRead(ctx context.Context, rawURL string, pc *PageContext) (*models.Article, error) {
	return t.setReadState(ctx, rawURL, pc, true)
}

// MarkUnread is symmetric to MarkRead: isRead false, read timestamp
// cleared.
func (t *Tracker) MarkUnread(ctx context.Context, rawURL string, pc *PageContext) (*models.Article, error) {
	return t.setReadState(ctx, rawURL, pc, false)
}

func (t *Tracker) setReadState(ctx context.Context, rawURL string, pc *PageContext, read bool) (*models.Article, error) {
	url := urlnorm.Normalize(rawURL, t.baseURL)
	if url == "" {
		return nil, fmt.Errorf("invalid article URL %q", rawURL)
	}

	existing, err := t.store.Article(ctx, url)
	if err != nil {
		return nil, err
	}

	article := existing.Clone()
	if article == nil {
		article = models.NewArticle(url, "")
		if pc != nil {
			article.Title = pc.Title
			article.PublishedDate = pc.PublishedDate
			article.DateText = pc.DateText
		}
	}

	article.IsRead, article.ReadDate = merge.ReadStatus(existing, &merge.StatusChange{IsRead: read}, t.now())
	if err := t.store.Save(ctx, article); err != nil {
		return nil, err
	}

	t.cache.Patch(url, article)
	t.cache.Invalidate()
	return article, nil
}

// MarkReadBefore marks every unread article whose published date
// parses and falls before the cutoff as read. Records with an
// unparseable published date are left alone. Returns how many articles
// were marked.
func (t *Tracker) MarkReadBefore(ctx context.Context, cutoff time.Time) (int, error) {
	articles, err := t.cache.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load tracked articles: %w", err)
	}

	now := t.now()
	var marked []*models.Article
	for _, article := range articles {
		if article.IsRead {
			continue
		}
		published, ok := parsePublished(article)
		if !ok || !published.Before(cutoff) {
			continue
		}
		updated := article.Clone()
		updated.MarkRead(now)
		marked = append(marked, updated)
	}

	if len(marked) == 0 {
		return 0, nil
	}
	if err := t.store.SaveAll(ctx, marked); err != nil {
		return 0, fmt.Errorf("save marked articles: %w", err)
	}

	for _, article := range marked {
		t.cache.Patch(article.URL, article)
	}
	t.cache.Invalidate()
	return len(marked), nil
}

// FilterState returns the persisted page filter.
func (t *Tracker) FilterState(ctx context.Context) (models.FilterState, error) {
	return t.store.FilterState(ctx)
}

// SetFilterState persists the page filter.
func (t *Tracker) SetFilterState(ctx context.Context, state models.FilterState) error {
	return t.store.SetFilterState(ctx, state)
}
