// Package kvstore provides the durable key-value persistence behind the
// project registry snapshot, the language preference, and the admin
// session flag. The interface deliberately mirrors get/set/clear by key
// so components can be handed an in-memory fake in tests.
package kvstore

import "sync"

type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Set writes the value, replacing any previous one.
	Set(key, value string) error
	// Clear removes the key. Clearing an absent key is not an error.
	Clear(key string) error
}

// MemStore is the in-memory Store used by tests. Last write wins, as
// with the durable implementation.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemStore) Clear(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Len reports the number of stored keys. Test helper.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
