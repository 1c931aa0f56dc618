// ABOUTME: Article model representing a tracked article with read/unread state
// ABOUTME: Provides methods to mark articles read or unread with timestamps

package models

import "time"

// Article is the durable representation of one tracked article.
// The normalized URL is the primary key; the same logical article
// always maps to exactly one record.
type Article struct {
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	PublishedDate string     `json:"publishedDate,omitempty"`
	DateText      string     `json:"dateText,omitempty"`
	IsRead        bool       `json:"isRead"`
	ReadDate      *time.Time `json:"readDate"`
}

// NewArticle creates an unread article for the given normalized URL.
func NewArticle(url, title string) *Article {
	return &Article{
		URL:   url,
		Title: title,
	}
}

// MarkRead marks the article as read at the given time.
func (a *Article) MarkRead(at time.Time) {
	a.IsRead = true
	a.ReadDate = &at
}

// MarkUnread marks the article as unread and clears the read timestamp.
func (a *Article) MarkUnread() {
	a.IsRead = false
	a.ReadDate = nil
}

// Valid reports whether the record is addressable and well-formed:
// a non-empty URL and the read-state invariant (unread implies no
// read timestamp, read implies one).
func (a *Article) Valid() bool {
	if a == nil || a.URL == "" {
		return false
	}
	if a.IsRead {
		return a.ReadDate != nil
	}
	return a.ReadDate == nil
}

// Clone returns a copy of the article. The cache hands out snapshot
// entries by pointer, so write paths clone before mutating.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	dup := *a
	if a.ReadDate != nil {
		rd := *a.ReadDate
		dup.ReadDate = &rd
	}
	return &dup
}

// Draft is ephemeral article data produced by a scraper or feed source.
// It carries no read-state and is never persisted as-is; the sync
// engine merges it against existing records first.
type Draft struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	PublishedDate string `json:"publishedDate,omitempty"`
	DateText      string `json:"dateText,omitempty"`
}

// Valid reports whether the draft can be tracked. Drafts need a URL
// and a title; anything less is dropped at the boundary.
func (d Draft) Valid() bool {
	return d.URL != "" && d.Title != ""
}
