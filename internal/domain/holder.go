// Package domain defines the core entities of a Pump Pot reward cycle:
// holder balance snapshots, per-wallet trading stats, cycle metadata and
// the calculated winner records. All entities are read-only snapshots;
// the calculator never mutates them.
package domain

// StartSignatureKey is the reserved non-wallet key injected into the
// initial-balance snapshot to carry the cycle's starting transaction
// signature. It must be excluded from eligibility and all wallet sets.
const StartSignatureKey = "_start_signature"

// TokenHolder is one wallet's balance in the end-of-cycle snapshot.
// Addresses are unique within a snapshot.
type TokenHolder struct {
	Address string  // wallet address (base58)
	Amount  float64 // token balance at cycle end
}
