// ABOUTME: Charm KV backend using the transactional Do API
// ABOUTME: Short-lived connections per operation to avoid lock contention

package kv

import (
	"context"
	"os"

	"github.com/charmbracelet/charm/kv"
)

const (
	// DefaultCharmHost is used when CHARM_HOST is unset.
	DefaultCharmHost = "charm.2389.dev"

	// DBName is the charm kv database backing readlist.
	DBName = "readlist"
)

// CharmStore implements Store on top of charm's badger-backed KV.
// It holds no persistent connection: each operation opens the
// database, runs, and closes it.
type CharmStore struct {
	dbName   string
	autoSync bool
}

// NewCharmStore creates a charm-backed store. Auto-sync with the charm
// server is off by default; read-state tracking is local-first and
// never depends on the network for correctness.
func NewCharmStore() *CharmStore {
	if os.Getenv("CHARM_HOST") == "" {
		os.Setenv("CHARM_HOST", DefaultCharmHost)
	}
	return &CharmStore{dbName: DBName}
}

// NewCharmStoreWithDBName creates a charm-backed store over a custom
// database name. Use this for isolated test databases.
func NewCharmStoreWithDBName(dbName string) *CharmStore {
	return &CharmStore{dbName: dbName}
}

// SetAutoSync enables or disables syncing with the charm server after
// each write.
func (c *CharmStore) SetAutoSync(enabled bool) {
	c.autoSync = enabled
}

func (c *CharmStore) do(fn func(k *kv.KV) error) error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		if err := fn(k); err != nil {
			return err
		}
		if c.autoSync {
			return k.Sync()
		}
		return nil
	})
}

// Get returns the stored value for key, or nil when absent.
func (c *CharmStore) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		data, err := k.Get([]byte(key))
		if err != nil {
			return err
		}
		value = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// GetAll returns every key/value pair in the database.
func (c *CharmStore) GetAll(_ context.Context) (map[string][]byte, error) {
	items := make(map[string][]byte)
	err := kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		keys, err := k.Keys()
		if err != nil {
			return err
		}
		for _, key := range keys {
			data, err := k.Get(key)
			if err != nil {
				return err
			}
			items[string(key)] = data
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Set stores one key/value pair.
func (c *CharmStore) Set(_ context.Context, key string, value []byte) error {
	return c.do(func(k *kv.KV) error {
		return k.Set([]byte(key), value)
	})
}

// SetMany stores all pairs inside a single Do call, so a failure
// leaves none of the batch committed from the caller's point of view.
func (c *CharmStore) SetMany(_ context.Context, items map[string][]byte) error {
	return c.do(func(k *kv.KV) error {
		for key, value := range items {
			if err := k.Set([]byte(key), value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a key.
func (c *CharmStore) Delete(_ context.Context, key string) error {
	return c.do(func(k *kv.KV) error {
		return k.Delete([]byte(key))
	})
}

// Reset wipes all local data.
func (c *CharmStore) Reset() error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		return k.Reset()
	})
}
