package solanaaddr

import (
	"encoding/hex"
	"testing"

	"github.com/mr-tron/base58"
)

func TestValidate_KnownAddresses(t *testing.T) {
	for _, addr := range []string{
		"So11111111111111111111111111111111111111112", // WSOL mint
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", // USDC mint
		"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",  // SPL token program
	} {
		if err := Validate(addr); err != nil {
			t.Errorf("Validate(%q) failed: %v", addr, err)
		}
	}
}

func TestValidate_RejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"not base58":    "0OIl+/=",
		"too short":     base58.Encode([]byte{1, 2, 3}),
		"empty":         "",
		"sentinel-like": "_start_signature",
	}
	for name, addr := range cases {
		if err := Validate(addr); err == nil {
			t.Errorf("%s: Validate(%q) unexpectedly succeeded", name, addr)
		}
	}
}

func TestIsOnCurve_Basepoint(t *testing.T) {
	// The ed25519 basepoint encoding is on-curve by definition.
	raw, err := hex.DecodeString("5866666666666666666666666666666666666666666666666666666666666666")
	if err != nil {
		t.Fatal(err)
	}
	if !IsOnCurve(base58.Encode(raw)) {
		t.Error("basepoint reported off-curve")
	}
}

func TestIsOnCurve_InvalidInput(t *testing.T) {
	if IsOnCurve("not base58 at all!") {
		t.Error("invalid base58 reported on-curve")
	}
	if IsOnCurve(base58.Encode([]byte{1, 2, 3})) {
		t.Error("short input reported on-curve")
	}
}
