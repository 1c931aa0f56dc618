// ABOUTME: Filter command showing or persisting the page filter state
// ABOUTME: One reserved storage key holding all, read, or unread

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/models"
)

var filterCmd = &cobra.Command{
	Use:   "filter [all|read|unread]",
	Short: "Show or set the persisted page filter",
	Long:  "Without an argument, print the persisted filter. With one, persist it for future listings.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if len(args) == 0 {
			state, err := articleTracker.FilterState(ctx)
			if err != nil {
				return fmt.Errorf("failed to load filter state: %w", err)
			}
			fmt.Println(state)
			return nil
		}

		state, err := models.ParseFilterState(args[0])
		if err != nil {
			return err
		}
		if err := articleTracker.SetFilterState(ctx, state); err != nil {
			return fmt.Errorf("failed to save filter state: %w", err)
		}
		fmt.Printf("Filter set to %s\n", state)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
}
