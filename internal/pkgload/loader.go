// Package pkgload reads self-contained verification packages from the
// local filesystem and materializes them into the typed snapshots the
// reward calculator consumes. It performs no network or database access.
//
// A package directory contains exactly four required files: metadata.json
// plus the initial_balances, processed_swaps and final_balances tables.
package pkgload

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pumppot-verifier/internal/domain"
)

// Required file names within a package directory.
const (
	MetadataFile        = "metadata.json"
	InitialBalancesFile = "initial_balances.csv"
	ProcessedSwapsFile  = "processed_swaps.csv"
	FinalBalancesFile   = "final_balances.csv"
)

var (
	// ErrPackageNotFound is returned when the package directory does not exist.
	ErrPackageNotFound = errors.New("verification package directory not found")

	// ErrMissingFile is returned when a required package file is absent.
	ErrMissingFile = errors.New("missing required file in package")

	// ErrMissingField is returned when metadata lacks a required field.
	ErrMissingField = errors.New("missing required metadata field")

	// ErrBadRow is returned when a table row cannot be parsed.
	ErrBadRow = errors.New("malformed table row")
)

// Metadata mirrors metadata.json.
type Metadata struct {
	CycleID          string       `json:"cycle_id"`
	ExportedAt       int64        `json:"exported_at"`
	StartSignature   *string      `json:"start_signature"`
	VerificationSeed string       `json:"verification_seed"`
	Rules            domain.Rules `json:"rules"`
}

// Package is the fully materialized content of one verification package.
type Package struct {
	Metadata Metadata

	// TokenHolders is the end-of-cycle balance snapshot in file order.
	TokenHolders []domain.TokenHolder

	// CycleStats maps wallet to its trading activity during the cycle.
	CycleStats map[string]domain.CycleStat

	// InitialBalances is the start-of-cycle snapshot with the sentinel
	// entry already injected.
	InitialBalances map[string]float64
}

// Load reads and validates a verification package from dir. It fails fast
// with a descriptive error naming the first missing file or field; partial
// packages are never returned.
func Load(dir string) (*Package, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, dir)
	}

	for _, name := range []string{MetadataFile, InitialBalancesFile, ProcessedSwapsFile, FinalBalancesFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, name)
		}
	}

	meta, err := loadMetadata(filepath.Join(dir, MetadataFile))
	if err != nil {
		return nil, err
	}

	initialBalances, err := readBalanceTable(filepath.Join(dir, InitialBalancesFile))
	if err != nil {
		return nil, err
	}
	// The sentinel carries the start signature slot in the snapshot keyed
	// space; its balance value is never read.
	initialMap := make(map[string]float64, len(initialBalances)+1)
	for _, b := range initialBalances {
		initialMap[b.Address] = b.Amount
	}
	initialMap[domain.StartSignatureKey] = 0

	stats, err := readStatsTable(filepath.Join(dir, ProcessedSwapsFile))
	if err != nil {
		return nil, err
	}

	holders, err := readBalanceTable(filepath.Join(dir, FinalBalancesFile))
	if err != nil {
		return nil, err
	}

	return &Package{
		Metadata:        *meta,
		TokenHolders:    holders,
		CycleStats:      stats,
		InitialBalances: initialMap,
	}, nil
}

// loadMetadata parses metadata.json and validates required fields.
func loadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", MetadataFile, err)
	}

	// Rule thresholds are parsed through pointers so an absent field is
	// distinguishable from an explicit zero.
	var raw struct {
		CycleID          string  `json:"cycle_id"`
		ExportedAt       int64   `json:"exported_at"`
		StartSignature   *string `json:"start_signature"`
		VerificationSeed *string `json:"verification_seed"`
		Rules            *struct {
			MinEligibleHoldingAmount *float64 `json:"min_eligible_holding_amount"`
			MinTradeVolume           *float64 `json:"min_trade_volume"`
		} `json:"rules"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", MetadataFile, err)
	}

	if raw.VerificationSeed == nil || *raw.VerificationSeed == "" {
		return nil, fmt.Errorf("%w: verification_seed", ErrMissingField)
	}
	if raw.Rules == nil {
		return nil, fmt.Errorf("%w: rules", ErrMissingField)
	}
	if raw.Rules.MinEligibleHoldingAmount == nil {
		return nil, fmt.Errorf("%w: rules.min_eligible_holding_amount", ErrMissingField)
	}
	if raw.Rules.MinTradeVolume == nil {
		return nil, fmt.Errorf("%w: rules.min_trade_volume", ErrMissingField)
	}

	return &Metadata{
		CycleID:          raw.CycleID,
		ExportedAt:       raw.ExportedAt,
		StartSignature:   raw.StartSignature,
		VerificationSeed: *raw.VerificationSeed,
		Rules: domain.Rules{
			MinEligibleHoldingAmount: *raw.Rules.MinEligibleHoldingAmount,
			MinTradeVolume:           *raw.Rules.MinTradeVolume,
		},
	}, nil
}
