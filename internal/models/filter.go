// ABOUTME: Page filter state persisted alongside article records
// ABOUTME: Controls which articles the list surfaces: all, read, or unread

package models

import "fmt"

// FilterState selects which articles a listing shows.
type FilterState string

const (
	FilterAll    FilterState = "all"
	FilterRead   FilterState = "read"
	FilterUnread FilterState = "unread"
)

// ParseFilterState validates a filter value. The empty string maps to
// FilterAll, matching the absent-key default of the durable store.
func ParseFilterState(s string) (FilterState, error) {
	switch FilterState(s) {
	case "":
		return FilterAll, nil
	case FilterAll, FilterRead, FilterUnread:
		return FilterState(s), nil
	default:
		return "", fmt.Errorf("invalid filter state %q: use all, read, or unread", s)
	}
}

// Matches reports whether an article passes the filter.
func (f FilterState) Matches(a *Article) bool {
	switch f {
	case FilterRead:
		return a.IsRead
	case FilterUnread:
		return !a.IsRead
	default:
		return true
	}
}
