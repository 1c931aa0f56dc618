// ABOUTME: Backup import and export for article read-state
// ABOUTME: Structural validation up front, per-entry merge policy after

package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/merge"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/models"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/timeutil"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/urlnorm"
)

// ImportResult classifies every entry of an import batch. The counts
// always satisfy Imported+Updated+Skipped == total entries submitted.
type ImportResult struct {
	Imported int // no prior record, accepted
	Updated  int // prior record, accepted
	Skipped  int // rejected by merge policy or structurally invalid
}

// Total returns the number of entries the batch contained.
func (r ImportResult) Total() int {
	return r.Imported + r.Updated + r.Skipped
}

// Import merges a backup document into the store. The raw JSON must be
// an object with an articles array; anything else fails before any
// per-article processing begins. Entries are then processed
// independently: ones without a usable URL or that fail to decode are
// skipped, the rest go through the import merge policy. Accepted
// records are written in one batch.
func (t *Tracker) Import(ctx context.Context, raw []byte) (ImportResult, error) {
	var result ImportResult

	var doc struct {
		Articles *[]json.RawMessage `json:"articles"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return result, fmt.Errorf("invalid backup file: %w", err)
	}
	if doc.Articles == nil {
		return result, fmt.Errorf("invalid backup file: missing articles array")
	}

	existing, err := t.cache.Get(ctx)
	if err != nil {
		return result, fmt.Errorf("load tracked articles: %w", err)
	}

	now := t.now()
	accepted := make(map[string]*models.Article)
	for _, entry := range *doc.Articles {
		var imported models.Article
		if err := json.Unmarshal(entry, &imported); err != nil {
			t.log.Debug("skipping malformed import entry", "error", err)
			result.Skipped++
			continue
		}

		imported.URL = urlnorm.Normalize(imported.URL, t.baseURL)
		if imported.URL == "" {
			result.Skipped++
			continue
		}

		prior := existing[imported.URL]
		if queued, ok := accepted[imported.URL]; ok {
			// Later entries for the same URL merge against the queued
			// result, keeping the batch order-independent.
			prior = queued
		}

		merged := merge.ForImport(prior, &imported, now)
		if merged == nil {
			result.Skipped++
			continue
		}

		if _, tracked := existing[imported.URL]; tracked {
			result.Updated++
		} else if _, queued := accepted[imported.URL]; queued {
			// Duplicate of an entry already counted as imported.
			result.Updated++
		} else {
			result.Imported++
		}
		accepted[imported.URL] = merged
	}

	if len(accepted) > 0 {
		batch := make([]*models.Article, 0, len(accepted))
		for _, article := range accepted {
			batch = append(batch, article)
		}
		if err := t.store.SaveAll(ctx, batch); err != nil {
			return result, fmt.Errorf("save imported articles: %w", err)
		}
		for _, article := range batch {
			t.cache.Patch(article.URL, article)
		}
		t.cache.Invalidate()
	}

	return result, nil
}

// Export wraps all tracked articles in a backup envelope, sorted by
// URL for stable output.
func (t *Tracker) Export(ctx context.Context) (*models.ExportDocument, error) {
	articles, err := t.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tracked articles: %w", err)
	}

	sorted := make([]*models.Article, 0, len(articles))
	for _, article := range articles {
		sorted = append(sorted, article)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].URL < sorted[j].URL
	})

	return models.NewExportDocument(sorted, t.now()), nil
}

// parsePublished extracts a usable timestamp from a record's
// best-effort date fields.
func parsePublished(article *models.Article) (time.Time, bool) {
	return timeutil.ParseArticleDate(article.PublishedDate, article.DateText)
}
