// ABOUTME: Mark-unread command clearing an article's read-state
// ABOUTME: Symmetric to mark-read: isRead false, read timestamp cleared

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var markUnreadCmd = &cobra.Command{
	Use:   "mark-unread <url>",
	Short: "Mark an article as unread",
	Long:  "Clear an article's read-state, removing its read timestamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		article, err := articleTracker.MarkUnread(cmd.Context(), args[0], nil)
		if err != nil {
			return fmt.Errorf("failed to mark as unread: %w", err)
		}

		name := article.Title
		if name == "" {
			name = article.URL
		}
		fmt.Printf("Marked as unread: %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(markUnreadCmd)
}
