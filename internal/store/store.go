// ABOUTME: Durable store adapter mapping article records onto the key-value store
// ABOUTME: JSON codec, key namespacing, and the reserved filter-state key

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/kv"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/models"
)

const (
	// ArticlePrefix namespaces article record keys: ArticlePrefix +
	// normalized URL.
	ArticlePrefix = "article:"

	// filterStateKey is the reserved key holding the page filter state.
	filterStateKey = "meta:filterState"
)

// Store wraps the key-value backend with article-aware operations.
// Native store failures surface to the caller unmodified; only decode
// failures of individual records degrade to a logged skip, so one
// corrupted value cannot take down a full listing.
type Store struct {
	backend kv.Store
	log     *slog.Logger
}

// New creates a store adapter over the given backend.
func New(backend kv.Store) *Store {
	return &Store{backend: backend, log: slog.Default()}
}

func articleKey(url string) string {
	return ArticlePrefix + url
}

// Article returns the record for a normalized URL, or nil when the
// article is not tracked.
func (s *Store) Article(ctx context.Context, url string) (*models.Article, error) {
	if url == "" {
		return nil, nil
	}
	data, err := s.backend.Get(ctx, articleKey(url))
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var article models.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil, fmt.Errorf("decode article %s: %w", url, err)
	}
	return &article, nil
}

// All returns every tracked article keyed by normalized URL. Records
// that fail to decode are skipped with a warning.
func (s *Store) All(ctx context.Context) (map[string]*models.Article, error) {
	items, err := s.backend.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make(map[string]*models.Article, len(items))
	for key, data := range items {
		if !strings.HasPrefix(key, ArticlePrefix) {
			continue
		}

		var article models.Article
		if err := json.Unmarshal(data, &article); err != nil {
			s.log.Warn("skipping corrupted article record", "key", key, "error", err)
			continue
		}
		articles[strings.TrimPrefix(key, ArticlePrefix)] = &article
	}
	return articles, nil
}

// Save stores one article record under its normalized URL.
func (s *Store) Save(ctx context.Context, article *models.Article) error {
	if article == nil || article.URL == "" {
		return fmt.Errorf("cannot save article without a URL")
	}
	data, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("encode article: %w", err)
	}
	return s.backend.Set(ctx, articleKey(article.URL), data)
}

// SaveAll stores the given articles in one underlying batch call.
// If the write fails, none of the batch is considered saved.
func (s *Store) SaveAll(ctx context.Context, articles []*models.Article) error {
	if len(articles) == 0 {
		return nil
	}
	items := make(map[string][]byte, len(articles))
	for _, article := range articles {
		if article == nil || article.URL == "" {
			return fmt.Errorf("cannot save article without a URL")
		}
		data, err := json.Marshal(article)
		if err != nil {
			return fmt.Errorf("encode article %s: %w", article.URL, err)
		}
		items[articleKey(article.URL)] = data
	}
	return s.backend.SetMany(ctx, items)
}

// Delete removes an article record.
func (s *Store) Delete(ctx context.Context, url string) error {
	return s.backend.Delete(ctx, articleKey(url))
}

// FilterState returns the persisted page filter, defaulting to
// FilterAll when the key is absent or holds an unknown value.
func (s *Store) FilterState(ctx context.Context) (models.FilterState, error) {
	data, err := s.backend.Get(ctx, filterStateKey)
	if err != nil {
		return models.FilterAll, fmt.Errorf("get filter state: %w", err)
	}

	state, err := models.ParseFilterState(string(data))
	if err != nil {
		s.log.Warn("resetting unknown filter state", "value", string(data))
		return models.FilterAll, nil
	}
	return state, nil
}

// SetFilterState persists the page filter under the reserved key.
func (s *Store) SetFilterState(ctx context.Context, state models.FilterState) error {
	if _, err := models.ParseFilterState(string(state)); err != nil {
		return err
	}
	return s.backend.Set(ctx, filterStateKey, []byte(state))
}
