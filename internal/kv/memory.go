// ABOUTME: In-memory Store implementation for tests
// ABOUTME: Supports injected read/write failures and operation counting

package kv

import (
	"context"
	"sync"
)

// Memory is an in-memory Store used by tests. Failures can be injected
// to exercise the error paths of the layers above, and operation
// counters expose how often the store is actually hit.
type Memory struct {
	mu       sync.Mutex
	data     map[string][]byte
	readErr  error
	writeErr error

	// Reads counts Get and GetAll calls; Writes counts Set, SetMany,
	// and Delete calls.
	Reads  int
	Writes int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// FailReads makes subsequent read operations return err. Pass nil to
// restore normal behavior.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// FailWrites makes subsequent write operations return err. Pass nil to
// restore normal behavior.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reads++
	if m.readErr != nil {
		return nil, m.readErr
	}
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	dup := make([]byte, len(value))
	copy(dup, value)
	return dup, nil
}

func (m *Memory) GetAll(_ context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reads++
	if m.readErr != nil {
		return nil, m.readErr
	}
	items := make(map[string][]byte, len(m.data))
	for key, value := range m.data {
		dup := make([]byte, len(value))
		copy(dup, value)
		items[key] = dup
	}
	return items, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) SetMany(_ context.Context, items map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	for key, value := range items {
		m.data[key] = append([]byte(nil), value...)
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	delete(m.data, key)
	return nil
}
