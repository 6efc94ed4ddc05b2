package pkgload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"pumppot-verifier/internal/domain"
)

var (
	balanceHeader = []string{"wallet", "amount"}
	statsHeader   = []string{"wallet", "total_volume", "largest_buy", "largest_buy_tx", "buys", "sells"}
)

// readBalanceTable parses a wallet,amount CSV into holder records in file order.
func readBalanceTable(path string) ([]domain.TokenHolder, error) {
	rows, err := readTable(path, balanceHeader)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	holders := make([]domain.TokenHolder, 0, len(rows))
	for i, row := range rows {
		amount, err := parseFloatField(name, "amount", row[1], i+2)
		if err != nil {
			return nil, err
		}
		holders = append(holders, domain.TokenHolder{Address: row[0], Amount: amount})
	}
	return holders, nil
}

// readStatsTable parses the processed_swaps CSV into a wallet-keyed map.
// An empty largest_buy_tx column means no recorded buy transaction.
func readStatsTable(path string) (map[string]domain.CycleStat, error) {
	rows, err := readTable(path, statsHeader)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	stats := make(map[string]domain.CycleStat, len(rows))
	for i, row := range rows {
		line := i + 2
		totalVolume, err := parseFloatField(name, "total_volume", row[1], line)
		if err != nil {
			return nil, err
		}
		largestBuy, err := parseFloatField(name, "largest_buy", row[2], line)
		if err != nil {
			return nil, err
		}
		buys, err := parseFloatField(name, "buys", row[4], line)
		if err != nil {
			return nil, err
		}
		sells, err := parseFloatField(name, "sells", row[5], line)
		if err != nil {
			return nil, err
		}

		var largestBuyTx *string
		if row[3] != "" {
			tx := row[3]
			largestBuyTx = &tx
		}

		stats[row[0]] = domain.CycleStat{
			Wallet:       row[0],
			TotalVolume:  totalVolume,
			LargestBuy:   largestBuy,
			LargestBuyTx: largestBuyTx,
			Buys:         buys,
			Sells:        sells,
		}
	}
	return stats, nil
}

// readTable reads a CSV file and validates its header row.
func readTable(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	name := filepath.Base(path)
	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	got, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s: empty file", ErrBadRow, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadRow, name, err)
	}
	for i, col := range header {
		if got[i] != col {
			return nil, fmt.Errorf("%w: %s: header column %d is %q, want %q", ErrBadRow, name, i, got[i], col)
		}
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadRow, name, err)
		}
		rows = append(rows, row)
	}
}

// parseFloatField parses one numeric column with row context in the error.
func parseFloatField(file, field, value string, line int) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s line %d: %s=%q", ErrBadRow, file, line, field, value)
	}
	return f, nil
}
