// Package memory provides a process-lifetime implementation of the kv
// record store. It backs the session-scoped checkout backup records,
// which by contract must not survive a restart, and doubles as the
// storage fixture in tests.
package memory

import (
	"context"
	"maps"
	"strings"
	"sync"

	"storefront/internal/infra/persistence/kv"
)

type store struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewStore creates an empty in-memory record store.
func NewStore() kv.Store {
	return &store{
		records: make(map[string][]byte),
	}
}

// Get returns the record stored under key, or kv.ErrKeyNotFound.
func (s *store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}

	// Copy so callers can never mutate the stored record.
	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

// Put stores the record under key, replacing any previous value.
func (s *store) Put(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = stored

	return nil
}

// Delete removes the record under key.
func (s *store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)

	return nil
}

// Keys lists every stored key starting with prefix.
func (s *store) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for key := range maps.Keys(s.records) {
		if strings.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}

	return out, nil
}
