// Package solanaaddr validates Solana wallet addresses: base58 encodings
// of 32-byte ed25519 public keys.
package solanaaddr

import (
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// Validate checks that addr is a base58-encoded 32-byte public key.
func Validate(addr string) error {
	raw, err := base58.Decode(addr)
	if err != nil {
		return fmt.Errorf("decode address %q: %w", addr, err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("address %q: expected 32 bytes, got %d", addr, len(raw))
	}
	return nil
}

// IsOnCurve reports whether addr decodes to a point on the ed25519 curve.
// Program-derived addresses are off-curve by construction, so accounts
// owned by programs rather than users report false.
func IsOnCurve(addr string) bool {
	raw, err := base58.Decode(addr)
	if err != nil || len(raw) != 32 {
		return false
	}
	_, err = new(edwards25519.Point).SetBytes(raw)
	return err == nil
}
