package export

import (
	"context"
	"fmt"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/storage"
)

// FixtureCycleID is the cycle loaded by LoadFixtures.
const FixtureCycleID = "cycle_demo_001"

// Well-known mainnet addresses reused as demo wallets. They are real
// base58 32-byte keys, so address validation in the export path stays hot.
const (
	fixtureWalletWSOL     = "So11111111111111111111111111111111111111112"
	fixtureWalletUSDC     = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	fixtureWalletTokenkeg = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	fixtureWalletRaydium  = "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8"
	fixtureWalletPump     = "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P"
)

// LoadFixtures populates the stores with one complete demo cycle and
// returns its ID. Intended for the export tool's -use-fixtures mode and
// for tests.
func LoadFixtures(ctx context.Context, cycles storage.CycleStore, balances storage.HolderBalanceStore, stats storage.CycleStatStore) (string, error) {
	sig := "5demoStartSignature1111111111111111111111111111111111111111111111111111111111111111111"
	cycle := &domain.Cycle{
		CycleID:          FixtureCycleID,
		VerificationSeed: "demo-seed-001",
		StartSignature:   &sig,
		Rules: domain.Rules{
			MinEligibleHoldingAmount: 10,
			MinTradeVolume:           25,
		},
		StartedAt: 1761655000000,
		EndedAt:   1761660600000,
	}
	if err := cycles.Insert(ctx, cycle); err != nil {
		return "", fmt.Errorf("insert fixture cycle: %w", err)
	}

	initial := []*domain.HolderBalance{
		{CycleID: FixtureCycleID, Phase: domain.PhaseInitial, Wallet: fixtureWalletRaydium, Amount: 120},
		{CycleID: FixtureCycleID, Phase: domain.PhaseInitial, Wallet: fixtureWalletPump, Amount: 40},
		{CycleID: FixtureCycleID, Phase: domain.PhaseInitial, Wallet: fixtureWalletUSDC, Amount: 80},
		{CycleID: FixtureCycleID, Phase: domain.PhaseInitial, Wallet: fixtureWalletWSOL, Amount: 0},
	}
	final := []*domain.HolderBalance{
		{CycleID: FixtureCycleID, Phase: domain.PhaseFinal, Wallet: fixtureWalletRaydium, Amount: 150},
		{CycleID: FixtureCycleID, Phase: domain.PhaseFinal, Wallet: fixtureWalletPump, Amount: 12},
		{CycleID: FixtureCycleID, Phase: domain.PhaseFinal, Wallet: fixtureWalletUSDC, Amount: 95},
		{CycleID: FixtureCycleID, Phase: domain.PhaseFinal, Wallet: fixtureWalletWSOL, Amount: 30},
		{CycleID: FixtureCycleID, Phase: domain.PhaseFinal, Wallet: fixtureWalletTokenkeg, Amount: 5},
	}
	if err := balances.InsertBulk(ctx, append(initial, final...)); err != nil {
		return "", fmt.Errorf("insert fixture balances: %w", err)
	}

	txRaydium := "3raydiumDemoBuyTx111111111111111111111111111"
	txWSOL := "2wsolDemoBuyTx1111111111111111111111111111111"
	cycleStats := []*domain.CycleStat{
		{
			CycleID:      FixtureCycleID,
			Wallet:       fixtureWalletRaydium,
			TotalVolume:  310,
			LargestBuy:   90,
			LargestBuyTx: &txRaydium,
			Buys:         200,
			Sells:        110,
		},
		{
			CycleID:      FixtureCycleID,
			Wallet:       fixtureWalletWSOL,
			TotalVolume:  55,
			LargestBuy:   30,
			LargestBuyTx: &txWSOL,
			Buys:         40,
			Sells:        15,
		},
		{
			CycleID:     FixtureCycleID,
			Wallet:      fixtureWalletPump,
			TotalVolume: 20,
			LargestBuy:  0,
			Buys:        0,
			Sells:       20,
		},
	}
	if err := stats.InsertBulk(ctx, cycleStats); err != nil {
		return "", fmt.Errorf("insert fixture stats: %w", err)
	}

	return FixtureCycleID, nil
}
