// ABOUTME: URL identity normalizer for article records
// ABOUTME: Canonicalizes URLs so one logical article maps to one storage key

package urlnorm

import (
	"net/url"
	"strings"
)

// Normalize canonicalizes an article URL: relative references are
// resolved against baseURL, a single trailing slash is stripped unless
// the result is the bare origin, and the returned string is always
// absolute. It never fails; on unparseable input it falls back to
// string-level heuristics. Empty input yields the empty string, which
// downstream validators reject.
func Normalize(rawURL, baseURL string) string {
	if rawURL == "" {
		return ""
	}

	base, baseErr := url.Parse(baseURL)
	ref, refErr := url.Parse(rawURL)
	if refErr != nil || (baseErr != nil && !isAbsolute(rawURL)) {
		return fallback(rawURL, baseURL)
	}

	resolved := ref
	if baseErr == nil {
		resolved = base.ResolveReference(ref)
	}
	if resolved.Scheme == "" || resolved.Host == "" {
		return fallback(rawURL, baseURL)
	}
	if resolved.Path == "" {
		// Canonical form of the bare origin carries the root slash.
		resolved.Path = "/"
	}

	return stripTrailingSlash(resolved.String())
}

func isAbsolute(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// fallback is the string-level path for input the URL parser rejects:
// strip one trailing slash and prefix the base when not absolute.
func fallback(rawURL, baseURL string) string {
	s := rawURL
	if !isAbsolute(s) && baseURL != "" {
		s = strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(s, "/")
	}
	return stripTrailingSlash(s)
}

// stripTrailingSlash removes a single trailing slash unless the URL is
// a bare origin like https://example.com/.
func stripTrailingSlash(s string) string {
	if !strings.HasSuffix(s, "/") {
		return s
	}
	trimmed := strings.TrimSuffix(s, "/")
	rest := trimmed
	if idx := strings.Index(trimmed, "://"); idx >= 0 {
		rest = trimmed[idx+3:]
	}
	if !strings.Contains(rest, "/") {
		// Bare origin: keep the root slash.
		return trimmed + "/"
	}
	return trimmed
}
