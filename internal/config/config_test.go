// ABOUTME: Tests for configuration defaults and load/save round trip

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	if cfg.GetSiteURL() != DefaultSiteURL {
		t.Errorf("expected default site, got %q", cfg.GetSiteURL())
	}
	if cfg.GetFeedURL() != DefaultFeedURL {
		t.Errorf("expected default feed for default site, got %q", cfg.GetFeedURL())
	}
	if cfg.GetDBName() == "" {
		t.Error("expected a non-empty default database name")
	}
}

func TestFeedURLDisabledForCustomSite(t *testing.T) {
	cfg := &Config{SiteURL: "https://example.com/"}
	if got := cfg.GetFeedURL(); got != "" {
		t.Errorf("custom site without a feed should disable the feed source, got %q", got)
	}

	cfg.FeedURL = "https://example.com/rss.xml"
	if got := cfg.GetFeedURL(); got != "https://example.com/rss.xml" {
		t.Errorf("explicit feed should win, got %q", got)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// First load writes defaults.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(GetConfigPath()); err != nil {
		t.Errorf("first run should write a config file: %v", err)
	}

	cfg.SiteURL = "https://example.com/"
	cfg.DBName = "custom"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.SiteURL != "https://example.com/" || loaded.DBName != "custom" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"~", home},
		{"~/x", filepath.Join(home, "x")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
	}
	for _, tt := range cases {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
