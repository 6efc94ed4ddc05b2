// Package storage defines the store interfaces the export pipeline reads
// cycle data from. The verifier itself never touches these: it consumes
// only the files inside a verification package.
package storage

import (
	"context"

	"pumppot-verifier/internal/domain"
)

// CycleStore provides access to pump_cycles storage.
type CycleStore interface {
	// Insert adds a new cycle. Returns ErrDuplicateKey if cycle_id exists.
	Insert(ctx context.Context, c *domain.Cycle) error

	// GetByID retrieves a cycle by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, cycleID string) (*domain.Cycle, error)
}

// HolderBalanceStore provides access to holder_balances storage.
type HolderBalanceStore interface {
	// InsertBulk adds multiple balance rows atomically. Fails entire batch
	// on any duplicate (cycle_id, phase, wallet).
	InsertBulk(ctx context.Context, balances []*domain.HolderBalance) error

	// GetByCycle retrieves one phase's snapshot for a cycle, ordered by
	// wallet ASC.
	GetByCycle(ctx context.Context, cycleID string, phase domain.BalancePhase) ([]*domain.HolderBalance, error)
}

// CycleStatStore provides access to cycle_wallet_stats storage.
type CycleStatStore interface {
	// InsertBulk adds multiple stat rows. Fails entire batch on any
	// duplicate (cycle_id, wallet).
	InsertBulk(ctx context.Context, stats []*domain.CycleStat) error

	// GetByCycleID retrieves all stats for a cycle, ordered by wallet ASC.
	GetByCycleID(ctx context.Context, cycleID string) ([]*domain.CycleStat, error)
}
