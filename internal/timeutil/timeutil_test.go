// ABOUTME: Tests for period cutoffs and scraped date parsing

package timeutil

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	for _, period := range []string{"today", "week", "month"} {
		cutoff, ok := ParsePeriod(period)
		if !ok {
			t.Errorf("ParsePeriod(%q) not recognized", period)
			continue
		}
		if cutoff.After(time.Now()) {
			t.Errorf("ParsePeriod(%q) = %v, cutoff must not be in the future", period, cutoff)
		}
		if cutoff.Hour() != 0 || cutoff.Minute() != 0 || cutoff.Second() != 0 {
			t.Errorf("ParsePeriod(%q) = %v, expected a midnight boundary", period, cutoff)
		}
	}

	if _, ok := ParsePeriod("fortnight"); ok {
		t.Error("unknown period must not parse")
	}
}

func TestStartOfWeekIsSunday(t *testing.T) {
	if got := StartOfWeek().Weekday(); got != time.Sunday {
		t.Errorf("expected Sunday, got %v", got)
	}
}

func TestParseArticleDate(t *testing.T) {
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		publishedDate string
		dateText      string
		ok            bool
	}{
		{"rfc3339", "2024-05-01T00:00:00Z", "", true},
		{"bare date", "2024-05-01", "", true},
		{"long form text", "", "May 1, 2024", true},
		{"short month text", "", "May 1, 2024", true},
		{"day first", "", "1 May 2024", true},
		{"prefers published over text", "2024-05-01", "January 1, 1999", true},
		{"falls back to text", "not-a-date", "May 1, 2024", true},
		{"both empty", "", "", false},
		{"unparseable", "someday", "soon", false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseArticleDate(tt.publishedDate, tt.dateText)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}
