// ABOUTME: Configuration for the tracked site and storage backend
// ABOUTME: JSON config under the XDG config directory with first-run defaults

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/kv"
	"github.com/diegorv/lethain-com-chrome-extension-read-list/internal/store"
)

// Defaults for the tracked site.
const (
	DefaultSiteURL = "https://lethain.com/"
	DefaultFeedURL = "https://lethain.com/feeds.xml"
)

// Config stores readlist configuration.
type Config struct {
	// SiteURL is the content-listing page whose articles are tracked.
	SiteURL string `json:"site_url,omitempty"`

	// FeedURL optionally points at the site's feed, which carries
	// better dates than the listing markup. Empty disables the feed
	// source.
	FeedURL string `json:"feed_url,omitempty"`

	// DBName selects the charm kv database. Defaults to "readlist".
	DBName string `json:"db_name,omitempty"`
}

// GetSiteURL returns the configured site, defaulting to lethain.com.
func (c *Config) GetSiteURL() string {
	if c.SiteURL == "" {
		return DefaultSiteURL
	}
	return c.SiteURL
}

// GetFeedURL returns the configured feed URL, defaulting to the
// site's feed when the site itself is the default.
func (c *Config) GetFeedURL() string {
	if c.FeedURL != "" {
		return c.FeedURL
	}
	if c.SiteURL == "" || c.SiteURL == DefaultSiteURL {
		return DefaultFeedURL
	}
	return ""
}

// GetDBName returns the configured database name.
func (c *Config) GetDBName() string {
	if c.DBName == "" {
		return kv.DBName
	}
	return c.DBName
}

// OpenStore creates the durable store adapter over the configured
// charm kv database.
func (c *Config) OpenStore() *store.Store {
	backend := kv.NewCharmStoreWithDBName(c.GetDBName())
	return store.New(backend)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "readlist", "config.json")
}

// Load reads config from disk, writing defaults on first run.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			if saveErr := cfg.Save(); saveErr != nil {
				fmt.Fprintf(os.Stderr, "warning: could not save default config: %v\n", saveErr)
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
