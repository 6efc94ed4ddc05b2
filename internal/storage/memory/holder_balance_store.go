package memory

import (
	"context"
	"sort"
	"sync"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/storage"
)

type balanceKey struct {
	cycleID string
	phase   domain.BalancePhase
	wallet  string
}

// HolderBalanceStore is an in-memory implementation of storage.HolderBalanceStore.
type HolderBalanceStore struct {
	mu   sync.RWMutex
	data map[balanceKey]*domain.HolderBalance
}

// NewHolderBalanceStore creates a new in-memory holder balance store.
func NewHolderBalanceStore() *HolderBalanceStore {
	return &HolderBalanceStore{data: make(map[balanceKey]*domain.HolderBalance)}
}

var _ storage.HolderBalanceStore = (*HolderBalanceStore)(nil)

// InsertBulk adds multiple balance rows atomically. Fails entire batch on
// any duplicate (cycle_id, phase, wallet).
func (s *HolderBalanceStore) InsertBulk(_ context.Context, balances []*domain.HolderBalance) error {
	if len(balances) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Track keys in this batch to detect intra-batch duplicates
	batchKeys := make(map[balanceKey]struct{}, len(balances))
	for _, b := range balances {
		if b == nil || b.CycleID == "" || b.Wallet == "" {
			return storage.ErrInvalidInput
		}
		k := balanceKey{b.CycleID, b.Phase, b.Wallet}
		if _, exists := s.data[k]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[k]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[k] = struct{}{}
	}

	for _, b := range balances {
		copy := *b
		s.data[balanceKey{b.CycleID, b.Phase, b.Wallet}] = &copy
	}
	return nil
}

// GetByCycle retrieves one phase's snapshot for a cycle, ordered by wallet ASC.
func (s *HolderBalanceStore) GetByCycle(_ context.Context, cycleID string, phase domain.BalancePhase) ([]*domain.HolderBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.HolderBalance
	for _, b := range s.data {
		if b.CycleID == cycleID && b.Phase == phase {
			copy := *b
			result = append(result, &copy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Wallet < result[j].Wallet
	})

	return result, nil
}
