package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// memoryStore keeps entries in a map. Non-durable; used by tests and as a
// drop-in when no database file is wanted.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

func NewMemory() Store {
	return &memoryStore{entries: make(map[string]json.RawMessage)}
}

func (s *memoryStore) Get(key string, out any) error {
	s.mu.RLock()
	raw, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode value for key %s: %w", key, err)
	}
	return nil
}

func (s *memoryStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value for key %s: %w", key, err)
	}
	s.mu.Lock()
	s.entries[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	s.entries = make(map[string]json.RawMessage)
	s.mu.Unlock()
	return nil
}
