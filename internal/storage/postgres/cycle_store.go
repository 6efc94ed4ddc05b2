package postgres

import (
	"context"
	"fmt"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/storage"
)

// CycleStore implements storage.CycleStore using PostgreSQL.
type CycleStore struct {
	pool *Pool
}

// NewCycleStore creates a new CycleStore.
func NewCycleStore(pool *Pool) *CycleStore {
	return &CycleStore{pool: pool}
}

// Compile-time interface check.
var _ storage.CycleStore = (*CycleStore)(nil)

// Insert adds a new cycle. Returns ErrDuplicateKey if cycle_id exists.
func (s *CycleStore) Insert(ctx context.Context, c *domain.Cycle) error {
	if c == nil || c.CycleID == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO pump_cycles (
			cycle_id, verification_seed, start_signature,
			min_eligible_holding_amount, min_trade_volume,
			started_at, ended_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.pool.Exec(ctx, query,
		c.CycleID, c.VerificationSeed, c.StartSignature,
		c.Rules.MinEligibleHoldingAmount, c.Rules.MinTradeVolume,
		c.StartedAt, c.EndedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert cycle: %w", err)
	}
	return nil
}

// GetByID retrieves a cycle by its ID. Returns ErrNotFound if not exists.
func (s *CycleStore) GetByID(ctx context.Context, cycleID string) (*domain.Cycle, error) {
	query := `
		SELECT cycle_id, verification_seed, start_signature,
		       min_eligible_holding_amount, min_trade_volume,
		       started_at, ended_at
		FROM pump_cycles
		WHERE cycle_id = $1
	`

	var c domain.Cycle
	err := s.pool.QueryRow(ctx, query, cycleID).Scan(
		&c.CycleID, &c.VerificationSeed, &c.StartSignature,
		&c.Rules.MinEligibleHoldingAmount, &c.Rules.MinTradeVolume,
		&c.StartedAt, &c.EndedAt,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get cycle by id: %w", err)
	}
	return &c, nil
}
