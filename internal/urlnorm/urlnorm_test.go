// ABOUTME: Tests for URL identity normalization
// ABOUTME: Covers resolution, trailing slashes, idempotence, and malformed input

package urlnorm

import "testing"

const base = "https://lethain.com/"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"absolute", "https://lethain.com/some-post/", "https://lethain.com/some-post"},
		{"absolute no slash", "https://lethain.com/some-post", "https://lethain.com/some-post"},
		{"relative path", "/some-post/", "https://lethain.com/some-post"},
		{"relative without leading slash", "some-post", "https://lethain.com/some-post"},
		{"bare origin keeps root slash", "https://lethain.com/", "https://lethain.com/"},
		{"bare origin without slash", "https://lethain.com", "https://lethain.com/"},
		{"nested path", "/tags/architecture/post/", "https://lethain.com/tags/architecture/post"},
		{"other host untouched", "https://example.com/a/", "https://example.com/a"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, base)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"https://lethain.com/some-post/",
		"/relative/",
		"relative",
		"https://lethain.com/",
		"https://lethain.com",
		"::not-a-url::/",
	}
	for _, in := range inputs {
		once := Normalize(in, base)
		twice := Normalize(once, base)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeMalformedFallback(t *testing.T) {
	// Unparseable input still yields something usable rather than failing.
	got := Normalize("::weird::/", base)
	if got == "" {
		t.Fatal("expected non-empty fallback for malformed input")
	}
	if got[len(got)-1] == '/' {
		t.Errorf("fallback should strip the trailing slash, got %q", got)
	}
}

func TestNormalizeWithoutBase(t *testing.T) {
	got := Normalize("https://lethain.com/post/", "")
	if got != "https://lethain.com/post" {
		t.Errorf("expected absolute input to survive an empty base, got %q", got)
	}
}
