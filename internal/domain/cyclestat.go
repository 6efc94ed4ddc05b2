package domain

// CycleStat is one wallet's trading activity during a reward cycle.
// Corresponds to cycle_wallet_stats table in ClickHouse. One entry per
// wallet that traded.
type CycleStat struct {
	CycleID      string  // cycle this stat belongs to
	Wallet       string  // wallet address (base58)
	TotalVolume  float64 // total traded volume over the cycle
	LargestBuy   float64 // size of the single largest buy
	LargestBuyTx *string // tx signature of the largest buy (nullable)
	Buys         float64 // total bought
	Sells        float64 // total sold
}
