// Package export snapshots a finished cycle out of storage into a
// self-contained verification package directory. The package carries
// everything the offline verifier needs, so anyone can re-derive the
// winners without touching the databases.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/pkgload"
	"pumppot-verifier/internal/solanaaddr"
	"pumppot-verifier/internal/storage"
)

// ErrBadWallet is returned when a stored wallet address fails validation.
var ErrBadWallet = errors.New("invalid wallet address in storage")

// Builder assembles verification packages from the cycle stores.
type Builder struct {
	cycles   storage.CycleStore
	balances storage.HolderBalanceStore
	stats    storage.CycleStatStore
	logger   *log.Logger
}

// NewBuilder creates a Builder reading from the given stores.
func NewBuilder(cycles storage.CycleStore, balances storage.HolderBalanceStore, stats storage.CycleStatStore, logger *log.Logger) *Builder {
	return &Builder{
		cycles:   cycles,
		balances: balances,
		stats:    stats,
		logger:   logger,
	}
}

// Build exports cycleID into outputDir as the four package files. Every
// stored wallet address is validated before anything is written; a single
// bad address aborts the export.
func (b *Builder) Build(ctx context.Context, cycleID, outputDir string) error {
	cycle, err := b.cycles.GetByID(ctx, cycleID)
	if err != nil {
		return fmt.Errorf("load cycle %s: %w", cycleID, err)
	}

	initial, err := b.balances.GetByCycle(ctx, cycleID, domain.PhaseInitial)
	if err != nil {
		return fmt.Errorf("load initial balances: %w", err)
	}
	final, err := b.balances.GetByCycle(ctx, cycleID, domain.PhaseFinal)
	if err != nil {
		return fmt.Errorf("load final balances: %w", err)
	}
	stats, err := b.stats.GetByCycleID(ctx, cycleID)
	if err != nil {
		return fmt.Errorf("load cycle stats: %w", err)
	}

	if err := b.checkWallets(initial, final, stats); err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	meta := pkgload.Metadata{
		CycleID:          cycle.CycleID,
		ExportedAt:       time.Now().UnixMilli(),
		StartSignature:   cycle.StartSignature,
		VerificationSeed: cycle.VerificationSeed,
		Rules:            cycle.Rules,
	}
	if err := writeMetadata(filepath.Join(outputDir, pkgload.MetadataFile), meta); err != nil {
		return err
	}
	if err := writeBalanceTable(filepath.Join(outputDir, pkgload.InitialBalancesFile), initial); err != nil {
		return err
	}
	if err := writeStatsTable(filepath.Join(outputDir, pkgload.ProcessedSwapsFile), stats); err != nil {
		return err
	}
	if err := writeBalanceTable(filepath.Join(outputDir, pkgload.FinalBalancesFile), final); err != nil {
		return err
	}

	b.logger.Printf("exported cycle %s: %d initial balances, %d final balances, %d trader stats -> %s",
		cycleID, len(initial), len(final), len(stats), outputDir)
	return nil
}

// checkWallets validates every address that will land in the package.
// Off-curve addresses (program-owned accounts) are legal holders and only
// logged for visibility.
func (b *Builder) checkWallets(initial, final []*domain.HolderBalance, stats []*domain.CycleStat) error {
	offCurve := 0
	seen := make(map[string]struct{})

	check := func(wallet string) error {
		if _, ok := seen[wallet]; ok {
			return nil
		}
		seen[wallet] = struct{}{}
		if err := solanaaddr.Validate(wallet); err != nil {
			return fmt.Errorf("%w: %v", ErrBadWallet, err)
		}
		if !solanaaddr.IsOnCurve(wallet) {
			offCurve++
		}
		return nil
	}

	for _, row := range initial {
		if err := check(row.Wallet); err != nil {
			return err
		}
	}
	for _, row := range final {
		if err := check(row.Wallet); err != nil {
			return err
		}
	}
	for _, s := range stats {
		if err := check(s.Wallet); err != nil {
			return err
		}
	}

	if offCurve > 0 {
		b.logger.Printf("note: %d of %d wallets are off-curve (program-owned accounts)", offCurve, len(seen))
	}
	return nil
}

func writeMetadata(path string, meta pkgload.Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", pkgload.MetadataFile, err)
	}
	return nil
}

// writeBalanceTable writes a wallet,amount CSV. Rows arrive from storage
// already ordered by wallet ASC.
func writeBalanceTable(path string, rows []*domain.HolderBalance) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"wallet", "amount"})
	for _, row := range rows {
		records = append(records, []string{row.Wallet, formatFloat(row.Amount)})
	}
	return writeCSV(path, records)
}

func writeStatsTable(path string, stats []*domain.CycleStat) error {
	records := make([][]string, 0, len(stats)+1)
	records = append(records, []string{"wallet", "total_volume", "largest_buy", "largest_buy_tx", "buys", "sells"})
	for _, s := range stats {
		tx := ""
		if s.LargestBuyTx != nil {
			tx = *s.LargestBuyTx
		}
		records = append(records, []string{
			s.Wallet,
			formatFloat(s.TotalVolume),
			formatFloat(s.LargestBuy),
			tx,
			formatFloat(s.Buys),
			formatFloat(s.Sells),
		})
	}
	return writeCSV(path, records)
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}

// formatFloat renders a float with the shortest representation that
// round-trips through strconv.ParseFloat.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
