package kvstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore is an in-process fallback used when Redis is disabled
// and in tests. Data does not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore builds an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// GetJSON loads a JSON value.
func (s *MemoryStore) GetJSON(_ context.Context, sessionID, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[buildKey("", sessionID, key)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, buildKey("", sessionID, key))
		s.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(entry.payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON writes a JSON value.
func (s *MemoryStore) SetJSON(_ context.Context, sessionID, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := memoryEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[buildKey("", sessionID, key)] = entry
	s.mu.Unlock()
	return nil
}

// Del removes a key.
func (s *MemoryStore) Del(_ context.Context, sessionID, key string) error {
	s.mu.Lock()
	delete(s.entries, buildKey("", sessionID, key))
	s.mu.Unlock()
	return nil
}
