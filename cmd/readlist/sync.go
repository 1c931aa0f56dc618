// ABOUTME: Sync command scraping the site for new articles
// ABOUTME: Merges fresh drafts into the store without touching read-state

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/scrape"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scrape the site and track new articles",
	Long: `Fetch the site's listing page (and feed, when configured), extract
article drafts, and add the ones not tracked yet. Articles you have
already read are never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		scraper := scrape.New(appConfig.GetSiteURL())

		drafts, err := scraper.Page(ctx)
		if err != nil {
			return fmt.Errorf("failed to scrape %s: %w", appConfig.GetSiteURL(), err)
		}

		if feedURL := appConfig.GetFeedURL(); feedURL != "" {
			feedDrafts, err := scraper.Feed(ctx, feedURL)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: feed fetch failed: %v\n", err)
			} else {
				drafts = append(drafts, feedDrafts...)
			}
		}

		added, err := articleTracker.SyncNew(ctx, drafts)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		if added == 0 {
			fmt.Println("No new articles")
		} else {
			fmt.Printf("Tracked %d new articles\n", added)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
