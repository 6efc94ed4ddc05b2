// Package rewards implements the deterministic Pump Pot winner selection:
// seeded weighted sampling over four categories (Power Buyer, Volume King,
// Active Holder, Lottery). Given identical snapshots, seed and rules, two
// runs produce byte-identical winner records.
package rewards

import (
	"sort"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/rng"
)

// Inputs are the fully materialized, read-only snapshots for one cycle.
type Inputs struct {
	// TokenHolders is the end-of-cycle balance snapshot.
	TokenHolders []domain.TokenHolder
	// CycleStats maps wallet to its trading activity during the cycle.
	CycleStats map[string]domain.CycleStat
	// InitialBalances is the start-of-cycle snapshot, including the
	// StartSignatureKey sentinel entry.
	InitialBalances map[string]float64
	// Rules holds the eligibility thresholds.
	Rules domain.Rules
}

// Calculator selects the four category winners for one cycle. It owns its
// draw source for the duration of one Compute call and must not be shared
// across concurrent verifications; create one Calculator per run.
type Calculator struct {
	rand Rand
}

// New creates a Calculator seeded from the package's verification seed.
func New(seed string) *Calculator {
	return &Calculator{rand: rng.New(seed)}
}

// NewWithRand creates a Calculator with an injected draw source.
func NewWithRand(r Rand) *Calculator {
	return &Calculator{rand: r}
}

// Compute selects the winners of all four categories. Degenerate business
// conditions (no eligible wallets, zero total weight, empty participant
// lists) resolve to nil records or uniform picks, never errors.
//
// Categories draw from the shared stream in fixed order: Power Buyer,
// Volume King, Active Holder, Lottery. Reordering them, or re-seeding
// between draws, would change every subsequent winner.
func (c *Calculator) Compute(in Inputs) *domain.CycleWinners {
	finalBalances := make(map[string]float64, len(in.TokenHolders))
	for _, h := range in.TokenHolders {
		finalBalances[h.Address] = h.Amount
	}

	eligible := eligibleWallets(finalBalances, in.Rules)

	return &domain.CycleWinners{
		PowerBuyer:   c.drawPowerBuyer(in.CycleStats, eligible),
		VolumeKing:   c.drawVolumeKing(in.CycleStats, in.Rules, eligible),
		ActiveHolder: c.drawActiveHolder(in.InitialBalances, finalBalances, eligible),
		Lottery:      c.drawLottery(finalBalances, eligible),
	}
}

// eligibleWallets returns the universal eligibility set: non-sentinel
// wallets present in the final snapshot whose balance meets the minimum
// holding threshold. Computed once and reused by all four categories.
func eligibleWallets(finalBalances map[string]float64, rules domain.Rules) map[string]struct{} {
	eligible := make(map[string]struct{}, len(finalBalances))
	for wallet, balance := range finalBalances {
		if wallet == domain.StartSignatureKey {
			continue
		}
		if balance >= rules.MinEligibleHoldingAmount {
			eligible[wallet] = struct{}{}
		}
	}
	return eligible
}

// drawPowerBuyer weights eligible traders by their single largest buy.
func (c *Calculator) drawPowerBuyer(stats map[string]domain.CycleStat, eligible map[string]struct{}) *domain.WinnerRecord {
	var participants []participant
	for wallet, stat := range stats {
		if _, ok := eligible[wallet]; !ok {
			continue
		}
		if stat.LargestBuy > 0 {
			participants = append(participants, participant{wallet: wallet, weight: stat.LargestBuy})
		}
	}
	sortByWallet(participants)

	winner := weightedChoice(participants, c.rand)
	if winner == "" {
		return nil
	}

	stat := stats[winner]
	return &domain.WinnerRecord{
		Wallet:           winner,
		Metric:           stat.LargestBuy,
		TxSignature:      stat.LargestBuyTx,
		WinChancePercent: winChance(stat.LargestBuy, totalWeight(participants)),
	}
}

// drawVolumeKing weights eligible traders by total volume, subject to the
// minimum trade volume threshold.
func (c *Calculator) drawVolumeKing(stats map[string]domain.CycleStat, rules domain.Rules, eligible map[string]struct{}) *domain.WinnerRecord {
	var participants []participant
	for wallet, stat := range stats {
		if _, ok := eligible[wallet]; !ok {
			continue
		}
		if stat.TotalVolume >= rules.MinTradeVolume {
			participants = append(participants, participant{wallet: wallet, weight: stat.TotalVolume})
		}
	}
	sortByWallet(participants)

	winner := weightedChoice(participants, c.rand)
	if winner == "" {
		return nil
	}

	stat := stats[winner]
	buys, sells := stat.Buys, stat.Sells
	return &domain.WinnerRecord{
		Wallet:           winner,
		Metric:           stat.TotalVolume,
		Buys:             &buys,
		Sells:            &sells,
		WinChancePercent: winChance(stat.TotalVolume, totalWeight(participants)),
	}
}

// drawActiveHolder weights eligible wallets that held or grew their
// position: weight = 1.0*net_change + 0.25*start_balance, included only
// when net_change >= 0 and the weight is positive.
func (c *Calculator) drawActiveHolder(initialBalances, finalBalances map[string]float64, eligible map[string]struct{}) *domain.WinnerRecord {
	var participants []participant
	for wallet := range eligible {
		finalBalance := finalBalances[wallet]
		startBalance := initialBalances[wallet]
		netChange := finalBalance - startBalance
		if netChange < 0 {
			continue
		}
		weight := 1.0*netChange + 0.25*startBalance
		if weight > 0 {
			participants = append(participants, participant{wallet: wallet, weight: weight})
		}
	}
	sortByWallet(participants)

	winner := weightedChoice(participants, c.rand)
	if winner == "" {
		return nil
	}

	var winnerWeight float64
	for _, p := range participants {
		if p.wallet == winner {
			winnerWeight = p.weight
			break
		}
	}
	finalBalance := finalBalances[winner]
	startBalance := initialBalances[winner]
	return &domain.WinnerRecord{
		Wallet:           winner,
		Metric:           finalBalance,
		FinalBalance:     &finalBalance,
		StartBalance:     &startBalance,
		WinChancePercent: winChance(winnerWeight, totalWeight(participants)),
	}
}

// drawLottery picks one wallet uniformly among all universally eligible
// wallets, sorted lexicographically so the index draw lands on the same
// wallet in every implementation.
func (c *Calculator) drawLottery(finalBalances map[string]float64, eligible map[string]struct{}) *domain.WinnerRecord {
	wallets := make([]string, 0, len(eligible))
	for wallet := range eligible {
		wallets = append(wallets, wallet)
	}
	sort.Strings(wallets)

	if len(wallets) == 0 {
		return nil
	}

	winner := wallets[c.rand.IntN(len(wallets))]
	return &domain.WinnerRecord{
		Wallet:           winner,
		Metric:           finalBalances[winner],
		WinChancePercent: 1.0 / float64(len(wallets)) * 100,
	}
}

// sortByWallet orders participants lexicographically ascending by wallet.
// The weighted scan consumes the list in order, so this sort is mandatory
// for cross-implementation determinism.
func sortByWallet(participants []participant) {
	sort.Slice(participants, func(i, j int) bool {
		return participants[i].wallet < participants[j].wallet
	})
}
