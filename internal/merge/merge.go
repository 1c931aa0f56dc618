// ABOUTME: Pure merge decision functions for article records
// ABOUTME: Reconciles existing state with scraped drafts, explicit toggles, and imports

package merge

import (
	"time"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/models"
)

// StatusChange is an explicit read-state request, e.g. from a
// mark-as-read toggle. ReadDate may be nil when marking read, in which
// case the change takes effect at "now".
type StatusChange struct {
	IsRead   bool
	ReadDate *time.Time
}

// ReadStatus decides the reconciled read-state for a record.
//
// An explicit change is honored: marking read stamps the provided
// timestamp, or now when none is given; marking unread clears it.
// Without an explicit change the existing read-state is preserved
// untouched, so a background sync can never downgrade a read article.
// With neither, the result is unread.
func ReadStatus(existing *models.Article, change *StatusChange, now time.Time) (bool, *time.Time) {
	if change != nil {
		if !change.IsRead {
			return false, nil
		}
		if change.ReadDate != nil {
			rd := *change.ReadDate
			return true, &rd
		}
		return true, &now
	}

	if existing != nil {
		if existing.ReadDate == nil {
			return existing.IsRead, nil
		}
		rd := *existing.ReadDate
		return existing.IsRead, &rd
	}

	return false, nil
}

// ForSync merges a freshly scraped draft with the existing record, if
// any. Content fields prefer the draft when it is non-empty; read-state
// follows ReadStatus with no explicit change, so it is inherited or
// defaults to unread.
func ForSync(existing *models.Article, draft models.Draft, now time.Time) *models.Article {
	merged := &models.Article{
		URL:           draft.URL,
		Title:         draft.Title,
		PublishedDate: draft.PublishedDate,
		DateText:      draft.DateText,
	}

	if existing != nil {
		if merged.URL == "" {
			merged.URL = existing.URL
		}
		if merged.Title == "" {
			merged.Title = existing.Title
		}
		if merged.PublishedDate == "" {
			merged.PublishedDate = existing.PublishedDate
		}
		if merged.DateText == "" {
			merged.DateText = existing.DateText
		}
	}

	merged.IsRead, merged.ReadDate = ReadStatus(existing, nil, now)
	return merged
}

// ForImport applies the backup import policy and returns the record to
// store, or nil to reject the imported entry:
//
//  1. Only read articles are ever imported; unread entries are rejected.
//  2. If the existing record is unread (or absent), the imported
//     read-state is accepted.
//  3. If both are read, the chronologically later readDate wins. An
//     imported entry without a readDate loses to the existing record.
//
// Repeated imports are therefore idempotent, and importing two backups
// in either order converges on the later read timestamp.
//
// now is only used to repair accepted read entries that the backup
// left without a timestamp, preserving the read-implies-readDate
// invariant.
func ForImport(existing, imported *models.Article, now time.Time) *models.Article {
	if imported == nil || !imported.IsRead {
		return nil
	}

	if existing == nil || !existing.IsRead {
		return accept(existing, imported, now)
	}

	if imported.ReadDate == nil {
		return nil
	}
	if existing.ReadDate == nil || existing.ReadDate.Before(*imported.ReadDate) {
		return accept(existing, imported, now)
	}
	return nil
}

// accept builds the stored record for an accepted import: imported
// read-state, with content fields backfilled from the existing record
// where the backup left them empty.
func accept(existing, imported *models.Article, now time.Time) *models.Article {
	merged := imported.Clone()
	if merged.ReadDate == nil {
		merged.ReadDate = &now
	}
	if existing != nil {
		if merged.Title == "" {
			merged.Title = existing.Title
		}
		if merged.PublishedDate == "" {
			merged.PublishedDate = existing.PublishedDate
		}
		if merged.DateText == "" {
			merged.DateText = existing.DateText
		}
	}
	return merged
}
