// ABOUTME: Draft producers for the tracked site: HTML listing scraper and feed source
// ABOUTME: Translates page markup and feed items into plain Draft records

package scrape

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/fetch"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/models"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/urlnorm"
)

// Scraper produces article drafts for one content-listing site. It is
// a thin boundary layer: everything past it operates on plain Draft
// records, never on markup.
type Scraper struct {
	baseURL string
	log     *slog.Logger
}

// New creates a scraper for the given site origin.
func New(baseURL string) *Scraper {
	return &Scraper{baseURL: baseURL, log: slog.Default()}
}

// Page fetches the site's listing page and extracts article drafts.
func (s *Scraper) Page(ctx context.Context) ([]models.Draft, error) {
	result, err := fetch.Fetch(ctx, s.baseURL, "", "")
	if err != nil {
		return nil, fmt.Errorf("fetch listing page: %w", err)
	}
	return ParseListing(result.Body, s.baseURL)
}

// Feed fetches the site's feed and converts its items into drafts.
// Feed metadata tends to carry better dates than the listing markup.
func (s *Scraper) Feed(ctx context.Context, feedURL string) ([]models.Draft, error) {
	result, err := fetch.Fetch(ctx, feedURL, "", "")
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	parsed, err := gofeed.NewParser().ParseString(string(result.Body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	drafts := make([]models.Draft, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		draft := models.Draft{
			URL:      item.Link,
			Title:    strings.TrimSpace(item.Title),
			DateText: item.Published,
		}
		if item.PublishedParsed != nil {
			draft.PublishedDate = item.PublishedParsed.UTC().Format(time.RFC3339)
		}
		if !draft.Valid() {
			s.log.Debug("dropping feed item without url or title", "link", item.Link)
			continue
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// ParseListing walks the listing page markup and extracts one draft
// per article link: anchors inside headings or list items pointing at
// the site's own host. A <time> element in the same block supplies the
// published date (datetime attribute) and its human-readable text.
func ParseListing(body []byte, baseURL string) ([]models.Draft, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse listing HTML: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	var drafts []models.Draft
	seen := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isArticleBlock(n.Data) {
			if draft, ok := extractDraft(n, base, baseURL); ok && !seen[draft.URL] {
				seen[draft.URL] = true
				drafts = append(drafts, draft)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return drafts, nil
}

// isArticleBlock reports whether an element commonly wraps one listing
// entry.
func isArticleBlock(tag string) bool {
	switch tag {
	case "article", "li", "h1", "h2", "h3":
		return true
	}
	return false
}

// extractDraft pulls the first same-host anchor and any time element
// out of a listing block.
func extractDraft(block *html.Node, base *url.URL, baseURL string) (models.Draft, bool) {
	var draft models.Draft

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a":
				if draft.URL == "" {
					href := attr(n, "href")
					if sameHost(href, base) {
						draft.URL = urlnorm.Normalize(href, baseURL)
						draft.Title = strings.TrimSpace(textContent(n))
					}
				}
			case "time":
				if draft.PublishedDate == "" {
					draft.PublishedDate = attr(n, "datetime")
				}
				if draft.DateText == "" {
					draft.DateText = strings.TrimSpace(textContent(n))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(block)

	return draft, draft.Valid()
}

// sameHost reports whether href resolves to the tracked site's host.
// Relative references always do.
func sameHost(href string, base *url.URL) bool {
	if href == "" || strings.HasPrefix(href, "#") {
		return false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return false
	}
	if ref.Host == "" {
		return true
	}
	return ref.Host == base.Host
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}
