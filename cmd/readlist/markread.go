// ABOUTME: Mark-read command for marking articles as read
// ABOUTME: Supports a single article by URL or bulk operations by date

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/timeutil"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/tracker"
)

var markReadCmd = &cobra.Command{
	Use:   "mark-read [url]",
	Short: "Mark articles as read",
	Long:  "Mark a single article as read by URL, or use --before to mark all articles published before a date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		before, _ := cmd.Flags().GetString("before")

		// Single article mode
		if len(args) == 1 {
			if before != "" {
				return fmt.Errorf("cannot use --before with an article URL")
			}

			title, _ := cmd.Flags().GetString("title")
			date, _ := cmd.Flags().GetString("date")

			article, err := articleTracker.MarkRead(ctx, args[0], &tracker.PageContext{
				Title:         title,
				PublishedDate: date,
			})
			if err != nil {
				return fmt.Errorf("failed to mark as read: %w", err)
			}

			name := article.Title
			if name == "" {
				name = article.URL
			}
			fmt.Printf("Marked as read: %s\n", name)
			return nil
		}

		// Bulk mode requires --before
		if before == "" {
			return fmt.Errorf("provide an article URL or use --before for bulk marking")
		}

		cutoff, ok := timeutil.ParsePeriod(before)
		if !ok {
			parsed, err := time.Parse("2006-01-02", before)
			if err != nil {
				return fmt.Errorf("invalid period %q: use today, week, month, or YYYY-MM-DD", before)
			}
			cutoff = parsed
		}

		count, err := articleTracker.MarkReadBefore(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("failed to mark articles as read: %w", err)
		}

		if count == 0 {
			fmt.Println("No articles to mark as read")
		} else {
			fmt.Printf("Marked %d articles as read\n", count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(markReadCmd)

	markReadCmd.Flags().StringP("before", "b", "", "mark articles published before: today, week, month, or YYYY-MM-DD")
	markReadCmd.Flags().StringP("title", "t", "", "title to record when the article is not tracked yet")
	markReadCmd.Flags().StringP("date", "d", "", "published date to record when the article is not tracked yet")
}
