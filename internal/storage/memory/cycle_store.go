// Package memory provides in-memory store implementations used by tests
// and the export tool's fixture mode.
package memory

import (
	"context"
	"sync"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/storage"
)

// CycleStore is an in-memory implementation of storage.CycleStore.
type CycleStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Cycle // keyed by cycle_id
}

// NewCycleStore creates a new in-memory cycle store.
func NewCycleStore() *CycleStore {
	return &CycleStore{data: make(map[string]*domain.Cycle)}
}

var _ storage.CycleStore = (*CycleStore)(nil)

// Insert adds a new cycle. Returns ErrDuplicateKey if cycle_id exists.
func (s *CycleStore) Insert(_ context.Context, c *domain.Cycle) error {
	if c == nil || c.CycleID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[c.CycleID]; exists {
		return storage.ErrDuplicateKey
	}

	copy := *c
	s.data[c.CycleID] = &copy
	return nil
}

// GetByID retrieves a cycle by its ID. Returns ErrNotFound if not exists.
func (s *CycleStore) GetByID(_ context.Context, cycleID string) (*domain.Cycle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.data[cycleID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	copy := *c
	return &copy, nil
}
