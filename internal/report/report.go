// Package report renders calculated cycle winners for humans. It carries
// no decision logic; every value it prints comes from the calculator.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"pumppot-verifier/internal/domain"
)

// categoryTitles maps categories to their display names in draw order.
var categoryTitles = map[domain.Category]string{
	domain.CategoryPowerBuyer:   "Power Buyer",
	domain.CategoryVolumeKing:   "Volume King",
	domain.CategoryActiveHolder: "Active Holder",
	domain.CategoryLottery:      "Lottery",
}

// Render produces the winner report as text.
func Render(cycleID string, winners *domain.CycleWinners) string {
	var sb strings.Builder

	sb.WriteString("--- Verification Result: Calculated Winners ---\n")
	if cycleID != "" {
		sb.WriteString(fmt.Sprintf("Cycle: %s\n", cycleID))
	}
	sb.WriteString(strings.Repeat("=", 50) + "\n")

	for _, cat := range domain.Categories {
		sb.WriteString(fmt.Sprintf("\n%s:\n", categoryTitles[cat]))
		rec := winners.ByCategory(cat)
		if rec == nil {
			sb.WriteString("  No eligible winner was found for this category.\n")
			continue
		}
		renderRecord(&sb, cat, rec)
	}

	sb.WriteString("\n" + strings.Repeat("=", 50) + "\n")
	sb.WriteString("Verification finished successfully.\n")
	sb.WriteString("This result is deterministic: rerunning on the same package always yields the same winners.\n")

	return sb.String()
}

func renderRecord(sb *strings.Builder, cat domain.Category, rec *domain.WinnerRecord) {
	sb.WriteString(fmt.Sprintf("  Wallet:       %s\n", rec.Wallet))
	sb.WriteString(fmt.Sprintf("  Win Chance:   %.4f%%\n", rec.WinChancePercent))

	if cat == domain.CategoryActiveHolder && rec.FinalBalance != nil && rec.StartBalance != nil {
		sb.WriteString(fmt.Sprintf("  Holdings:     %.2f (started with %.2f)\n", *rec.FinalBalance, *rec.StartBalance))
	} else {
		sb.WriteString(fmt.Sprintf("  Metric Value: %.2f\n", rec.Metric))
	}

	if rec.TxSignature != nil && *rec.TxSignature != "" {
		sb.WriteString(fmt.Sprintf("  Winning TX:   %s\n", *rec.TxSignature))
	}
	if rec.Buys != nil && rec.Sells != nil {
		sb.WriteString(fmt.Sprintf("  Breakdown:    Buys=%.2f, Sells=%.2f\n", *rec.Buys, *rec.Sells))
	}
}

// RenderJSON produces the winner records as indented JSON. Categories with
// no winner are rendered as explicit nulls.
func RenderJSON(winners *domain.CycleWinners) ([]byte, error) {
	out, err := json.MarshalIndent(winners, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal winners: %w", err)
	}
	return out, nil
}
