package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/storage"
	"pumppot-verifier/internal/storage/postgres"
)

func TestCycleStore_InsertAndGet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := postgres.NewCycleStore(pool)
	ctx := context.Background()

	sig := "4sGjMW1sUnHzSxGspuhpqLDx6wiyjNtZ"
	cycle := &domain.Cycle{
		CycleID:          "cycle_2025_10_28",
		VerificationSeed: "seed-2025-10-28",
		StartSignature:   &sig,
		Rules:            domain.Rules{MinEligibleHoldingAmount: 10, MinTradeVolume: 25},
		StartedAt:        1761655000000,
		EndedAt:          1761660600000,
	}

	require.NoError(t, store.Insert(ctx, cycle))

	got, err := store.GetByID(ctx, "cycle_2025_10_28")
	require.NoError(t, err)
	require.Equal(t, cycle, got)
}

func TestCycleStore_NullableStartSignature(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := postgres.NewCycleStore(pool)
	ctx := context.Background()

	cycle := &domain.Cycle{
		CycleID:          "cycle_no_sig",
		VerificationSeed: "seed",
		StartSignature:   nil,
		Rules:            domain.Rules{MinEligibleHoldingAmount: 1, MinTradeVolume: 1},
	}

	require.NoError(t, store.Insert(ctx, cycle))

	got, err := store.GetByID(ctx, "cycle_no_sig")
	require.NoError(t, err)
	require.Nil(t, got.StartSignature)
}

func TestCycleStore_DuplicateKey(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := postgres.NewCycleStore(pool)
	ctx := context.Background()

	cycle := &domain.Cycle{CycleID: "cycle_dup", VerificationSeed: "seed"}
	require.NoError(t, store.Insert(ctx, cycle))

	err := store.Insert(ctx, cycle)
	require.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestCycleStore_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := postgres.NewCycleStore(pool)

	_, err := store.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
}
