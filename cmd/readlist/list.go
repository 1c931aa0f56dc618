// ABOUTME: List command for viewing tracked articles with live filtering
// ABOUTME: Displays read status, title, and date using color formatting

package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List tracked articles",
	Long:    "List tracked articles, filtered by the persisted page filter or an explicit --filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		filterFlag, _ := cmd.Flags().GetString("filter")

		var filter models.FilterState
		var err error
		if filterFlag != "" {
			filter, err = models.ParseFilterState(filterFlag)
			if err != nil {
				return err
			}
		} else {
			filter, err = articleTracker.FilterState(ctx)
			if err != nil {
				return fmt.Errorf("failed to load filter state: %w", err)
			}
		}

		articles, err := articleTracker.Articles(ctx)
		if err != nil {
			return fmt.Errorf("failed to list articles: %w", err)
		}

		shown := make([]*models.Article, 0, len(articles))
		for _, article := range articles {
			if filter.Matches(article) {
				shown = append(shown, article)
			}
		}
		if len(shown) == 0 {
			fmt.Println("No articles found")
			return nil
		}

		// Newest first by published date when it parses, URL as tiebreak.
		sort.Slice(shown, func(i, j int) bool {
			if shown[i].PublishedDate != shown[j].PublishedDate {
				return shown[i].PublishedDate > shown[j].PublishedDate
			}
			return shown[i].URL < shown[j].URL
		})

		faint := color.New(color.Faint).SprintFunc()
		for _, article := range shown {
			if article.IsRead {
				fmt.Print("✓ ")
			} else {
				fmt.Print("  ")
			}

			title := article.Title
			if title == "" {
				title = "Untitled"
			}
			fmt.Print(title)

			if article.DateText != "" {
				fmt.Print(" ", faint(article.DateText))
			} else if article.PublishedDate != "" {
				fmt.Print(" ", faint(article.PublishedDate))
			}

			fmt.Print(" ", faint(article.URL))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("filter", "f", "", "filter: all, read, or unread (default: persisted filter)")
}
