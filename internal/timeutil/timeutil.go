// ABOUTME: Time helpers for bulk read-state operations
// ABOUTME: Period cutoffs plus best-effort parsing of scraped date text

package timeutil

import (
	"strings"
	"time"
)

// StartOfToday returns midnight (00:00:00) of the current day in local time.
func StartOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// StartOfWeek returns midnight of the most recent Sunday in local time.
func StartOfWeek() time.Time {
	today := StartOfToday()
	return today.AddDate(0, 0, -int(today.Weekday()))
}

// StartOfMonth returns midnight of the first day of the current month in local time.
func StartOfMonth() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// ParsePeriod converts a period string to a cutoff time. Supported
// values: "today", "week", "month". Articles published before the
// cutoff qualify for bulk marking.
func ParsePeriod(period string) (time.Time, bool) {
	switch period {
	case "today":
		return StartOfToday(), true
	case "week":
		return StartOfWeek(), true
	case "month":
		return StartOfMonth(), true
	default:
		return time.Time{}, false
	}
}

// articleDateLayouts are the formats scraped date fields commonly
// carry: RFC3339 from feed metadata, bare dates from the listing page,
// and the site-native human-readable forms.
var articleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
}

// ParseArticleDate extracts a timestamp from a record's best-effort
// date fields, preferring the machine-oriented publishedDate and
// falling back to the human-readable dateText.
func ParseArticleDate(publishedDate, dateText string) (time.Time, bool) {
	for _, value := range []string{publishedDate, dateText} {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		for _, layout := range articleDateLayouts {
			if parsed, err := time.Parse(layout, value); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
