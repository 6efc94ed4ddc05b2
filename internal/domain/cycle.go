package domain

// Rules are the eligibility thresholds for one reward cycle.
type Rules struct {
	MinEligibleHoldingAmount float64 `json:"min_eligible_holding_amount"`
	MinTradeVolume           float64 `json:"min_trade_volume"`
}

// Cycle is one discrete reward period with a fixed snapshot of holders
// and trades. Corresponds to pump_cycles table in PostgreSQL.
type Cycle struct {
	CycleID          string  // unique cycle identifier
	VerificationSeed string  // seeds the winner draw, published with the package
	StartSignature   *string // tx signature marking the cycle start (nullable)
	Rules            Rules   // eligibility thresholds
	StartedAt        int64   // cycle start (ms)
	EndedAt          int64   // cycle end (ms)
}

// BalancePhase marks which snapshot a holder balance row belongs to.
type BalancePhase string

const (
	PhaseInitial BalancePhase = "initial" // start-of-cycle snapshot
	PhaseFinal   BalancePhase = "final"   // end-of-cycle snapshot
)

// HolderBalance is one wallet balance row within a cycle snapshot.
// Corresponds to holder_balances table in PostgreSQL.
type HolderBalance struct {
	CycleID string
	Phase   BalancePhase
	Wallet  string
	Amount  float64
}
