// ABOUTME: Root Cobra command and global flags
// ABOUTME: Sets up CLI structure and initializes config, store, cache, and tracker

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/cache"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/config"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/store"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/tracker"
)

var (
	siteFlag string

	appConfig      *config.Config
	articleStore   *store.Store
	articleCache   *cache.Cache
	articleTracker *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "readlist",
	Short: "Track which articles on a site you have read",
	Long: `readlist tracks which articles on a single content-listing site you
have read. Read-state lives in a local key-value store; sync scrapes
the site for new articles without ever touching what you've already
marked, and export/import moves your read history between machines.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if siteFlag != "" {
			appConfig.SiteURL = siteFlag
		}

		articleStore = appConfig.OpenStore()
		articleCache = cache.New(articleStore)
		articleTracker = tracker.New(articleStore, articleCache, appConfig.GetSiteURL())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if articleCache != nil {
			articleCache.Close()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siteFlag, "site", "", "site URL to track (default: configured site)")
}
