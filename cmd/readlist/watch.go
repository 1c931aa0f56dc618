// ABOUTME: Watch command running a long-lived page session
// ABOUTME: Periodic scrape-and-sync through the lifecycle coordinator until interrupted

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/scrape"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/session"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the site and sync new articles periodically",
	Long: `Run a long-lived session that scrapes the site on an interval and
tracks new articles as they appear. Stop with Ctrl-C; teardown
releases every timer and observer the session created.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, _ := cmd.Flags().GetDuration("interval")
		if interval <= 0 {
			return fmt.Errorf("interval must be positive")
		}

		scraper := scrape.New(appConfig.GetSiteURL())
		sess := session.New(articleTracker, articleCache, scraper, interval)
		defer sess.Close()

		sess.Start()
		fmt.Printf("Watching %s every %s (Ctrl-C to stop)\n", appConfig.GetSiteURL(), interval)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		select {
		case <-sig:
			fmt.Println("\nStopping")
		case <-sess.Coordinator().Context().Done():
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationP("interval", "i", 15*time.Minute, "time between scrapes")
}
