package waitlist

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type ItemType string

const (
	TypeProject ItemType = "project"
	TypeNFT     ItemType = "nft"
)

func (t ItemType) Validate() error {
	if t == TypeProject || t == TypeNFT {
		return nil
	}
	return fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, t)
}

// Item is a project or NFT mint the wallet is waiting on.
type Item struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	ProjectName   string    `json:"project_name"`
	Date          *string   `json:"date,omitempty"`
	ItemType      ItemType  `json:"item_type"`
	CreatedAt     time.Time `json:"created_at"`
}

type Patch struct {
	ProjectName *string   `json:"project_name,omitempty"`
	Date        *string   `json:"date,omitempty"`
	ItemType    *ItemType `json:"item_type,omitempty"`
}

// Apply copies set fields. An empty date clears it.
func (p Patch) Apply(it *Item) {
	if p.ProjectName != nil {
		it.ProjectName = strings.TrimSpace(*p.ProjectName)
	}
	if p.Date != nil {
		if d := strings.TrimSpace(*p.Date); d == "" {
			it.Date = nil
		} else {
			it.Date = &d
		}
	}
	if p.ItemType != nil {
		it.ItemType = *p.ItemType
	}
}

func (it *Item) Validate() error {
	if strings.TrimSpace(it.ProjectName) == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}
	if it.Date != nil {
		if _, err := time.Parse(time.DateOnly, *it.Date); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	return it.ItemType.Validate()
}

// Sort orders items by date ascending with undated items last.
func Sort(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].Date, items[j].Date
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})
}
