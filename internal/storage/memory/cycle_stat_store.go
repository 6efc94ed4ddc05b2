package memory

import (
	"context"
	"sort"
	"sync"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/storage"
)

type statKey struct {
	cycleID string
	wallet  string
}

// CycleStatStore is an in-memory implementation of storage.CycleStatStore.
type CycleStatStore struct {
	mu   sync.RWMutex
	data map[statKey]*domain.CycleStat
}

// NewCycleStatStore creates a new in-memory cycle stat store.
func NewCycleStatStore() *CycleStatStore {
	return &CycleStatStore{data: make(map[statKey]*domain.CycleStat)}
}

var _ storage.CycleStatStore = (*CycleStatStore)(nil)

// InsertBulk adds multiple stat rows. Fails entire batch on any duplicate
// (cycle_id, wallet).
func (s *CycleStatStore) InsertBulk(_ context.Context, stats []*domain.CycleStat) error {
	if len(stats) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchKeys := make(map[statKey]struct{}, len(stats))
	for _, st := range stats {
		if st == nil || st.CycleID == "" || st.Wallet == "" {
			return storage.ErrInvalidInput
		}
		k := statKey{st.CycleID, st.Wallet}
		if _, exists := s.data[k]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[k]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[k] = struct{}{}
	}

	for _, st := range stats {
		copy := *st
		s.data[statKey{st.CycleID, st.Wallet}] = &copy
	}
	return nil
}

// GetByCycleID retrieves all stats for a cycle, ordered by wallet ASC.
func (s *CycleStatStore) GetByCycleID(_ context.Context, cycleID string) ([]*domain.CycleStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.CycleStat
	for _, st := range s.data {
		if st.CycleID == cycleID {
			copy := *st
			result = append(result, &copy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Wallet < result[j].Wallet
	})

	return result, nil
}
