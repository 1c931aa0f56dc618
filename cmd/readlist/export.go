// ABOUTME: Export command writing the read-state backup document
// ABOUTME: JSON envelope to stdout or a file for later import

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tracked articles as JSON",
	Long:  "Write the backup document (version, export date, and all article records) to stdout or --out",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		doc, err := articleTracker.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}
		data = append(data, '\n')

		if out == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Printf("Exported %d articles to %s\n", doc.TotalArticles, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "", "write to file instead of stdout")
}
