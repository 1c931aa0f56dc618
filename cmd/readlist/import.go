// ABOUTME: Import command merging a backup document into the store
// ABOUTME: Reports imported, updated, and skipped counts per batch

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a read-state backup",
	Long: `Merge a previously exported backup into the store. Only read articles
are imported; for articles read on both sides the later read timestamp
wins, so repeated imports are safe.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		result, err := articleTracker.Import(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("Imported %d, updated %d, skipped %d (%d total)\n",
			result.Imported, result.Updated, result.Skipped, result.Total())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
