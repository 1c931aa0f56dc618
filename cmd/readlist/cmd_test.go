// ABOUTME: Tests for CLI commands
// ABOUTME: Tests command structure, flags, and subcommands

package main

import (
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "readlist" {
		t.Errorf("expected Use to be 'readlist', got %q", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("expected root command to have a short description")
	}
}

func TestRootPersistentFlags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("site") == nil {
		t.Error("expected --site flag to exist")
	}
}

func TestListCommand(t *testing.T) {
	if listCmd.Use != "list" {
		t.Errorf("expected Use to be 'list', got %q", listCmd.Use)
	}
	if len(listCmd.Aliases) == 0 {
		t.Error("expected list command to have aliases")
	}
	if listCmd.Flags().Lookup("filter") == nil {
		t.Error("expected --filter flag to exist")
	}
}

func TestMarkReadCommand(t *testing.T) {
	if markReadCmd.Use != "mark-read [url]" {
		t.Errorf("expected Use to be 'mark-read [url]', got %q", markReadCmd.Use)
	}

	// Check flags exist
	if markReadCmd.Flags().Lookup("before") == nil {
		t.Error("expected --before flag to exist")
	}
	if markReadCmd.Flags().Lookup("title") == nil {
		t.Error("expected --title flag to exist")
	}
	if markReadCmd.Flags().Lookup("date") == nil {
		t.Error("expected --date flag to exist")
	}
}

func TestMarkUnreadCommand(t *testing.T) {
	if markUnreadCmd.Use != "mark-unread <url>" {
		t.Errorf("expected Use to be 'mark-unread <url>', got %q", markUnreadCmd.Use)
	}
}

func TestFilterCommand(t *testing.T) {
	if filterCmd.Use != "filter [all|read|unread]" {
		t.Errorf("expected Use to be 'filter [all|read|unread]', got %q", filterCmd.Use)
	}
}

func TestExportCommand(t *testing.T) {
	if exportCmd.Use != "export" {
		t.Errorf("expected Use to be 'export', got %q", exportCmd.Use)
	}
	if exportCmd.Flags().Lookup("out") == nil {
		t.Error("expected --out flag to exist")
	}
}

func TestImportCommand(t *testing.T) {
	if importCmd.Use != "import <file>" {
		t.Errorf("expected Use to be 'import <file>', got %q", importCmd.Use)
	}
}

func TestSyncCommand(t *testing.T) {
	if syncCmd.Use != "sync" {
		t.Errorf("expected Use to be 'sync', got %q", syncCmd.Use)
	}
}

func TestWatchCommand(t *testing.T) {
	if watchCmd.Use != "watch" {
		t.Errorf("expected Use to be 'watch', got %q", watchCmd.Use)
	}
	if watchCmd.Flags().Lookup("interval") == nil {
		t.Error("expected --interval flag to exist")
	}
}

func TestCommandRegistration(t *testing.T) {
	// Check that subcommands are registered
	commands := rootCmd.Commands()

	commandNames := make(map[string]bool)
	for _, cmd := range commands {
		commandNames[cmd.Name()] = true
	}

	expectedCommands := []string{
		"sync",
		"list",
		"mark-read",
		"mark-unread",
		"filter",
		"export",
		"import",
		"status",
		"watch",
		"version",
	}

	for _, expected := range expectedCommands {
		if !commandNames[expected] {
			t.Errorf("expected command %q to be registered", expected)
		}
	}
}
