package storage

import (
	"strings"
	"sync"
)

// MemStore is an in-memory Store. It backs unit tests and any caller that
// wants profile storage without persistence.
type MemStore struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMem creates an empty in-memory store.
func NewMem() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.m[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *MemStore) Keys(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for k := range s.m {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
