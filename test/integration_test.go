// ABOUTME: Integration tests for the full read-state workflow
// ABOUTME: Scrape, sync, mark read, export, and restore into a fresh store

package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/cache"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/kv"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/models"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/scrape"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/store"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/tracker"
)

const listingPage = `<!DOCTYPE html>
<html><body>
<ul>
  <li><a href="/first-post/">First Post</a> <time datetime="2024-01-15">January 15, 2024</time></li>
  <li><a href="/second-post/">Second Post</a> <time datetime="2024-03-02">March 2, 2024</time></li>
  <li><a href="/third-post/">Third Post</a></li>
</ul>
</body></html>`

func newTracker(t *testing.T, baseURL string) (*tracker.Tracker, *store.Store) {
	t.Helper()
	st := store.New(kv.NewMemory())
	ca := cache.New(st)
	t.Cleanup(ca.Close)
	return tracker.New(st, ca, baseURL), st
}

// TestFullWorkflow drives the complete flow: scrape a listing page,
// sync the drafts, mark one article read, export, and import the
// backup into a fresh store.
func TestFullWorkflow(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(listingPage))
	}))
	defer server.Close()
	baseURL := server.URL + "/"

	tr, _ := newTracker(t, baseURL)

	// Scrape the listing page.
	drafts, err := scrape.New(baseURL).Page(ctx)
	if err != nil {
		t.Fatalf("failed to scrape listing: %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("expected 3 drafts from listing, got %d", len(drafts))
	}

	// Sync them into the tracker.
	added, err := tr.SyncNew(ctx, drafts)
	if err != nil {
		t.Fatalf("failed to sync drafts: %v", err)
	}
	if added != 3 {
		t.Errorf("expected 3 added on first sync, got %d", added)
	}

	// A second sync pass discovers nothing new.
	added, err = tr.SyncNew(ctx, drafts)
	if err != nil {
		t.Fatalf("failed to re-sync: %v", err)
	}
	if added != 0 {
		t.Errorf("expected 0 added on repeat sync, got %d", added)
	}

	// Mark one article read.
	firstURL := baseURL + "first-post/"
	marked, err := tr.MarkRead(ctx, firstURL, nil)
	if err != nil {
		t.Fatalf("failed to mark read: %v", err)
	}
	if !marked.IsRead || marked.ReadDate == nil {
		t.Fatalf("expected read with a timestamp, got %+v", marked)
	}

	// Read-state survives another sync pass.
	if _, err := tr.SyncNew(ctx, drafts); err != nil {
		t.Fatal(err)
	}
	got, err := tr.Article(ctx, firstURL)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || !got.IsRead {
		t.Errorf("read-state lost across sync: %+v", got)
	}

	// Export the store.
	doc, err := tr.Export(ctx)
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}
	if doc.TotalArticles != 3 {
		t.Errorf("expected 3 exported articles, got %d", doc.TotalArticles)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	// Import into a fresh tracker: only read records transfer.
	fresh, freshStore := newTracker(t, baseURL)
	result, err := fresh.Import(ctx, data)
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}
	if result.Imported != 1 || result.Skipped != 2 {
		t.Errorf("expected 1 imported and 2 skipped (unread), got %+v", result)
	}

	restored, err := freshStore.Article(ctx, got.URL)
	if err != nil {
		t.Fatal(err)
	}
	if restored == nil || !restored.IsRead || !restored.ReadDate.Equal(*marked.ReadDate) {
		t.Errorf("restored record mismatch: %+v", restored)
	}

	t.Log("full workflow test completed successfully")
}

// TestBulkMarkBeforeCutoff syncs dated articles and bulk-marks the old
// ones read.
func TestBulkMarkBeforeCutoff(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTracker(t, "https://lethain.com/")

	drafts := []models.Draft{
		{URL: "/old", Title: "Old", PublishedDate: "2023-01-01"},
		{URL: "/recent", Title: "Recent", PublishedDate: "2024-06-01"},
		{URL: "/undated", Title: "Undated"},
	}
	if _, err := tr.SyncNew(ctx, drafts); err != nil {
		t.Fatal(err)
	}

	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	count, err := tr.MarkReadBefore(ctx, cutoff)
	if err != nil {
		t.Fatalf("failed to bulk mark: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 article marked, got %d", count)
	}

	articles, err := tr.Articles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	read := 0
	for _, a := range articles {
		if a.IsRead {
			read++
		}
	}
	if read != 1 {
		t.Errorf("expected exactly 1 read article, got %d", read)
	}
}
