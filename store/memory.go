package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is a map-backed DurableStore used in tests and available as a
// throwaway backend. Values round-trip through JSON so it behaves like the
// real backends, including losing anything JSON cannot represent.
type MemStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (m *MemStore) Load(key string, dest any) (bool, error) {
	m.mu.Lock()
	data, ok := m.blobs[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode blob %s: %w", key, err)
	}
	return true, nil
}

func (m *MemStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	m.mu.Lock()
	m.blobs[key] = data
	m.mu.Unlock()
	return nil
}

// Put stores raw JSON under key, bypassing marshalling. Tests use it to
// simulate blobs written by older releases or corrupt data.
func (m *MemStore) Put(key string, raw []byte) {
	m.mu.Lock()
	m.blobs[key] = append([]byte(nil), raw...)
	m.mu.Unlock()
}
