// Package rng provides the deterministic pseudo-random generator used by
// winner selection. The verification seed string is hashed with SHA-256
// and the first eight bytes (big-endian) initialize a SplitMix64 stream.
// Any implementation, in any language, that reproduces this exact stream
// reproduces the winners bit-for-bit.
package rng

import (
	"crypto/sha256"
	"encoding/binary"
)

// Generator is a seeded SplitMix64 stream. Not safe for concurrent use;
// each verification owns its own instance so that interleaved runs with
// different seeds cannot perturb each other.
type Generator struct {
	state uint64
}

// New creates a Generator seeded from the verification seed string.
func New(seed string) *Generator {
	sum := sha256.Sum256([]byte(seed))
	return &Generator{state: binary.BigEndian.Uint64(sum[:8])}
}

// next advances the SplitMix64 state and returns the next 64-bit value.
func (g *Generator) next() uint64 {
	g.state += 0x9E3779B97F4A7C15
	z := g.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Float64 returns a value in [0, 1) built from the top 53 bits of a
// single draw.
func (g *Generator) Float64() float64 {
	return float64(g.next()>>11) / (1 << 53)
}

// IntN returns a value in [0, n). Consumes exactly one draw.
// Panics if n <= 0.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		panic("rng: IntN with non-positive n")
	}
	i := int(g.Float64() * float64(n))
	// Float64() < 1 makes i < n for exact arithmetic; clamp guards the
	// rounding boundary without consuming another draw.
	if i >= n {
		i = n - 1
	}
	return i
}
