package postgres

import (
	"context"
	"fmt"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/storage"
)

// HolderBalanceStore implements storage.HolderBalanceStore using PostgreSQL.
type HolderBalanceStore struct {
	pool *Pool
}

// NewHolderBalanceStore creates a new HolderBalanceStore.
func NewHolderBalanceStore(pool *Pool) *HolderBalanceStore {
	return &HolderBalanceStore{pool: pool}
}

// Compile-time interface check.
var _ storage.HolderBalanceStore = (*HolderBalanceStore)(nil)

// InsertBulk adds multiple balance rows atomically. Fails entire batch on
// any duplicate (cycle_id, phase, wallet).
func (s *HolderBalanceStore) InsertBulk(ctx context.Context, balances []*domain.HolderBalance) error {
	if len(balances) == 0 {
		return nil
	}
	for _, b := range balances {
		if b == nil || b.CycleID == "" || b.Wallet == "" {
			return storage.ErrInvalidInput
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO holder_balances (cycle_id, phase, wallet, amount)
		VALUES ($1, $2, $3, $4)
	`

	for _, b := range balances {
		if _, err := tx.Exec(ctx, query, b.CycleID, string(b.Phase), b.Wallet, b.Amount); err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert holder balance: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetByCycle retrieves one phase's snapshot for a cycle, ordered by wallet ASC.
func (s *HolderBalanceStore) GetByCycle(ctx context.Context, cycleID string, phase domain.BalancePhase) ([]*domain.HolderBalance, error) {
	query := `
		SELECT cycle_id, phase, wallet, amount
		FROM holder_balances
		WHERE cycle_id = $1 AND phase = $2
		ORDER BY wallet ASC
	`

	rows, err := s.pool.Query(ctx, query, cycleID, string(phase))
	if err != nil {
		return nil, fmt.Errorf("query holder balances: %w", err)
	}
	defer rows.Close()

	var result []*domain.HolderBalance
	for rows.Next() {
		var b domain.HolderBalance
		var phaseStr string
		if err := rows.Scan(&b.CycleID, &phaseStr, &b.Wallet, &b.Amount); err != nil {
			return nil, fmt.Errorf("scan holder balance: %w", err)
		}
		b.Phase = domain.BalancePhase(phaseStr)
		result = append(result, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holder balances: %w", err)
	}
	return result, nil
}
