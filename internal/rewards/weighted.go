package rewards

// Rand is the source of random draws for winner selection. Exactly one
// draw is consumed per non-empty category, so a scripted implementation
// can be injected in tests to assert exact draw sequences.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// participant pairs a wallet with its sampling weight for one category.
type participant struct {
	wallet string
	weight float64
}

// weightedChoice selects one participant proportionally to weight using a
// single draw. The list must already be sorted by wallet ascending: the
// scan consumes it in order, so ordering is part of the selection result.
// A zero total weight degenerates to a uniform pick, still one draw.
// Returns "" for an empty list without consuming a draw.
func weightedChoice(participants []participant, r Rand) string {
	if len(participants) == 0 {
		return ""
	}

	total := totalWeight(participants)
	if total == 0 {
		return participants[r.IntN(len(participants))].wallet
	}

	draw := r.Float64() * total
	upto := 0.0
	for _, p := range participants {
		// >= (not >) decides boundary ties; changing the comparison
		// changes winners at upto+weight == draw.
		if upto+p.weight >= draw {
			return p.wallet
		}
		upto += p.weight
	}

	// Rounding can leave the running sum just short of the draw.
	return participants[len(participants)-1].wallet
}

func totalWeight(participants []participant) float64 {
	total := 0.0
	for _, p := range participants {
		total += p.weight
	}
	return total
}

// winChance is the winner's weight share of the category total, as a
// percentage. A degenerate zero total reports 100.
func winChance(winnerWeight, total float64) float64 {
	if total > 0 {
		return winnerWeight / total * 100
	}
	return 100.0
}
