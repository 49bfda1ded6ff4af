package finance

import (
	"fmt"
	"time"
)

type CostType string

const (
	CostGasFee        CostType = "Gas Fee"
	CostOther         CostType = "Other"
	CostClaimedReward CostType = "Claimed Reward"
)

var CostTypes = []CostType{CostGasFee, CostOther, CostClaimedReward}

func (c CostType) Validate() error {
	for _, v := range CostTypes {
		if c == v {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown cost type %q", ErrInvalidInput, c)
}

// IsReward reports whether the entry adds to claimed rewards instead of cost.
func (c CostType) IsReward() bool {
	return c == CostClaimedReward
}

// Entry is a single cost or reward booked against an airdrop.
type Entry struct {
	ID        string    `json:"id"`
	AirdropID string    `json:"airdrop_id"`
	CostType  CostType  `json:"cost_type"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Entry) Validate() error {
	if e.AirdropID == "" {
		return fmt.Errorf("%w: airdrop is required", ErrInvalidInput)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	return e.CostType.Validate()
}
