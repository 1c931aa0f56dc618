// ABOUTME: Key-value store contract assumed by the durable store adapter
// ABOUTME: Asynchronous get/set operations that may fail; no transactions

package kv

import "context"

// Store is the minimal contract the persistence layer assumes of the
// underlying key-value store: point and bulk reads, point and batch
// writes, and deletion. Operations may fail (quota, backend errors);
// failures surface to the caller unmodified. There are no transactions;
// SetMany is the only multi-key atomicity the layer relies on.
type Store interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// GetAll returns every key/value pair in the store.
	GetAll(ctx context.Context) (map[string][]byte, error)

	// Set stores a single key/value pair, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany stores all pairs in one underlying call. On failure none
	// of the batch is considered saved.
	SetMany(ctx context.Context, items map[string][]byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
