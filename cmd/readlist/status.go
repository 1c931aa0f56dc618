// ABOUTME: Status command summarizing tracked article counts
// ABOUTME: Totals, read/unread split, and the active page filter

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show tracking status",
	Long:  "Display how many articles are tracked, how many are read, and the persisted filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		articles, err := articleTracker.Articles(ctx)
		if err != nil {
			return fmt.Errorf("failed to load articles: %w", err)
		}

		read := 0
		for _, article := range articles {
			if article.IsRead {
				read++
			}
		}

		filter, err := articleTracker.FilterState(ctx)
		if err != nil {
			return fmt.Errorf("failed to load filter state: %w", err)
		}

		faint := color.New(color.Faint).SprintFunc()
		fmt.Printf("Site:     %s\n", appConfig.GetSiteURL())
		fmt.Printf("Tracked:  %d articles\n", len(articles))
		fmt.Printf("Read:     %d %s\n", read, faint(fmt.Sprintf("(%d unread)", len(articles)-read)))
		fmt.Printf("Filter:   %s\n", filter)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
