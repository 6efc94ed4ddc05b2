package clickhouse

import (
	"context"
	"fmt"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/storage"
)

// CycleStatStore implements storage.CycleStatStore using ClickHouse.
type CycleStatStore struct {
	conn *Conn
}

// NewCycleStatStore creates a new CycleStatStore.
func NewCycleStatStore(conn *Conn) *CycleStatStore {
	return &CycleStatStore{conn: conn}
}

// Compile-time interface check.
var _ storage.CycleStatStore = (*CycleStatStore)(nil)

// InsertBulk adds multiple stat rows. ClickHouse MergeTree does not
// enforce uniqueness at insert time, so duplicates are detected with
// explicit checks before the batch is sent.
func (s *CycleStatStore) InsertBulk(ctx context.Context, stats []*domain.CycleStat) error {
	if len(stats) == 0 {
		return nil
	}

	type key struct {
		cycleID string
		wallet  string
	}
	seen := make(map[key]struct{}, len(stats))
	for _, st := range stats {
		if st == nil || st.CycleID == "" || st.Wallet == "" {
			return storage.ErrInvalidInput
		}
		k := key{st.CycleID, st.Wallet}
		if _, exists := seen[k]; exists {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}

	for _, st := range stats {
		exists, err := s.exists(ctx, st.CycleID, st.Wallet)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO cycle_wallet_stats (
			cycle_id, wallet, total_volume, largest_buy, largest_buy_tx, buys, sells
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, st := range stats {
		err = batch.Append(
			st.CycleID, st.Wallet, st.TotalVolume, st.LargestBuy,
			st.LargestBuyTx, st.Buys, st.Sells,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByCycleID retrieves all stats for a cycle, ordered by wallet ASC.
func (s *CycleStatStore) GetByCycleID(ctx context.Context, cycleID string) ([]*domain.CycleStat, error) {
	query := `
		SELECT cycle_id, wallet, total_volume, largest_buy, largest_buy_tx, buys, sells
		FROM cycle_wallet_stats
		WHERE cycle_id = ?
		ORDER BY wallet ASC
	`

	rows, err := s.conn.Query(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("query by cycle id: %w", err)
	}
	defer rows.Close()

	var result []*domain.CycleStat
	for rows.Next() {
		var st domain.CycleStat
		err := rows.Scan(
			&st.CycleID, &st.Wallet, &st.TotalVolume, &st.LargestBuy,
			&st.LargestBuyTx, &st.Buys, &st.Sells,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cycle stat: %w", err)
		}
		result = append(result, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cycle stats: %w", err)
	}
	return result, nil
}

// exists checks if a stat row with the given key exists.
func (s *CycleStatStore) exists(ctx context.Context, cycleID, wallet string) (bool, error) {
	query := `
		SELECT count(*) FROM cycle_wallet_stats
		WHERE cycle_id = ? AND wallet = ?
	`

	var count uint64
	if err := s.conn.QueryRow(ctx, query, cycleID, wallet).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
