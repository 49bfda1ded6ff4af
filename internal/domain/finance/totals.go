package finance

import (
	"golang.org/x/exp/constraints"
)

// Totals is derived from entries on every read.
type Totals struct {
	TotalCost     float64 `json:"total_cost"`
	ClaimedReward float64 `json:"claimed_reward"`
	ProfitLoss    float64 `json:"profit_loss"`
	ROIPercent    float64 `json:"roi_percent"`
}

// AirdropSummary groups the entries of one airdrop with their totals.
type AirdropSummary struct {
	AirdropID string  `json:"airdrop_id"`
	Name      string  `json:"name"`
	Entries   []Entry `json:"entries"`
	Totals    Totals  `json:"totals"`
}

// Ref is the part of an airdrop the finance view needs.
type Ref struct {
	ID   string
	Name string
}

func sum[T any, N constraints.Integer | constraints.Float](items []T, f func(T) N) N {
	var total N
	for _, it := range items {
		total += f(it)
	}
	return total
}

func newTotals(cost, reward float64) Totals {
	t := Totals{
		TotalCost:     cost,
		ClaimedReward: reward,
		ProfitLoss:    reward - cost,
	}
	if cost != 0 {
		t.ROIPercent = 100 * t.ProfitLoss / cost
	}
	return t
}

// Compute returns the totals of entries. ROI is 0 when nothing was spent.
func Compute(entries []Entry) Totals {
	cost := sum(entries, func(e Entry) float64 {
		if e.CostType.IsReward() {
			return 0
		}
		return e.Amount
	})
	reward := sum(entries, func(e Entry) float64 {
		if e.CostType.IsReward() {
			return e.Amount
		}
		return 0
	})
	return newTotals(cost, reward)
}

// Summarize groups entries under airdrops in the order of airdrops.
// Entries whose airdrop is not listed are dropped.
func Summarize(airdrops []Ref, entries []Entry) []AirdropSummary {
	byAirdrop := make(map[string][]Entry, len(airdrops))
	for _, e := range entries {
		byAirdrop[e.AirdropID] = append(byAirdrop[e.AirdropID], e)
	}

	out := make([]AirdropSummary, 0, len(airdrops))
	for _, a := range airdrops {
		list := byAirdrop[a.ID]
		if list == nil {
			list = []Entry{}
		}
		out = append(out, AirdropSummary{
			AirdropID: a.ID,
			Name:      a.Name,
			Entries:   list,
			Totals:    Compute(list),
		})
	}
	return out
}

// Portfolio sums per-airdrop totals with the same formula.
func Portfolio(summaries []AirdropSummary) Totals {
	return newTotals(
		sum(summaries, func(s AirdropSummary) float64 { return s.Totals.TotalCost }),
		sum(summaries, func(s AirdropSummary) float64 { return s.Totals.ClaimedReward }),
	)
}
