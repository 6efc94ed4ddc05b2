package domain

// Category identifies one of the four reward categories. Categories are
// always drawn in the order listed here; the draw order is part of the
// determinism contract.
type Category string

const (
	CategoryPowerBuyer   Category = "power_buyer"
	CategoryVolumeKing   Category = "volume_king"
	CategoryActiveHolder Category = "active_holder"
	CategoryLottery      Category = "lottery"
)

// Categories lists all reward categories in draw order.
var Categories = []Category{
	CategoryPowerBuyer,
	CategoryVolumeKing,
	CategoryActiveHolder,
	CategoryLottery,
}

// WinnerRecord describes the winner of a single category. Pointer fields
// are populated only by the categories that carry them.
type WinnerRecord struct {
	Wallet           string  `json:"wallet"`
	Metric           float64 `json:"metric"`
	WinChancePercent float64 `json:"win_chance_percent"`

	// Power Buyer
	TxSignature *string `json:"tx_signature,omitempty"`

	// Volume King
	Buys  *float64 `json:"buys,omitempty"`
	Sells *float64 `json:"sells,omitempty"`

	// Active Holder
	FinalBalance *float64 `json:"final_balance,omitempty"`
	StartBalance *float64 `json:"start_balance,omitempty"`
}

// CycleWinners holds one record per category. A nil record means the
// category had no eligible participant, which is a valid outcome rather
// than an error.
type CycleWinners struct {
	PowerBuyer   *WinnerRecord `json:"power_buyer"`
	VolumeKing   *WinnerRecord `json:"volume_king"`
	ActiveHolder *WinnerRecord `json:"active_holder"`
	Lottery      *WinnerRecord `json:"lottery"`
}

// ByCategory returns the record for the given category, nil if absent.
func (w *CycleWinners) ByCategory(c Category) *WinnerRecord {
	switch c {
	case CategoryPowerBuyer:
		return w.PowerBuyer
	case CategoryVolumeKing:
		return w.VolumeKing
	case CategoryActiveHolder:
		return w.ActiveHolder
	case CategoryLottery:
		return w.Lottery
	}
	return nil
}
