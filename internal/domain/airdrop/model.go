package airdrop

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxNameLen = 120
	dateLayout = time.DateOnly
)

// Airdrop is a tracked project owned by exactly one wallet address.
// Optional fields are nil when unset.
type Airdrop struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	SchemaVersion int       `json:"schema_version"`
	Name          string    `json:"name"`
	Network       *string   `json:"network,omitempty"`
	Status        Status    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	Website       *string   `json:"website,omitempty"`
	Funds         *string   `json:"funds,omitempty"`
	EstimatedTGE  *string   `json:"estimated_tge,omitempty"`
	EstimatedVal  *string   `json:"estimated_value,omitempty"`
	TasksSummary  *string   `json:"tasks_summary,omitempty"`
	StartDate     *string   `json:"start_date,omitempty"`
	EndDate       *string   `json:"end_date,omitempty"`
	FarmingPoints *string   `json:"farming_points,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Patch carries the fields of an edit form. A nil field is left untouched,
// an empty string clears an optional field.
type Patch struct {
	SchemaVersion *int    `json:"schema_version,omitempty"`
	Name          *string `json:"name,omitempty"`
	Network       *string `json:"network,omitempty"`
	Status        *Status `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Website       *string `json:"website,omitempty"`
	Funds         *string `json:"funds,omitempty"`
	EstimatedTGE  *string `json:"estimated_tge,omitempty"`
	EstimatedVal  *string `json:"estimated_value,omitempty"`
	TasksSummary  *string `json:"tasks_summary,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	FarmingPoints *string `json:"farming_points,omitempty"`
}

// Filter selects and orders a wallet's airdrops.
type Filter struct {
	Status  Status
	Network string
	OrderBy string
	Desc    bool
}

// Order columns accepted by List.
var orderColumns = map[string]bool{
	"created_at": true,
	"name":       true,
	"status":     true,
	"network":    true,
}

// Normalize fills defaults and rejects unknown order columns.
func (f Filter) Normalize() (Filter, error) {
	if f.OrderBy == "" {
		f.OrderBy = "created_at"
		f.Desc = true
	}
	if !orderColumns[f.OrderBy] {
		return f, fmt.Errorf("%w: cannot order by %q", ErrInvalidInput, f.OrderBy)
	}
	if f.Status != "" {
		if err := f.Status.Validate(); err != nil {
			return f, err
		}
	}
	return f, nil
}

// Match reports whether a passes the equality filters.
func (f Filter) Match(a Airdrop) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Network != "" && (a.Network == nil || *a.Network != f.Network) {
		return false
	}
	return true
}

// Apply copies the set fields of p onto a.
func (p Patch) Apply(a *Airdrop) {
	if p.SchemaVersion != nil {
		a.SchemaVersion = *p.SchemaVersion
	}
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	setOptional(&a.Network, p.Network)
	setOptional(&a.Notes, p.Notes)
	setOptional(&a.Website, p.Website)
	setOptional(&a.Funds, p.Funds)
	setOptional(&a.EstimatedTGE, p.EstimatedTGE)
	setOptional(&a.EstimatedVal, p.EstimatedVal)
	setOptional(&a.TasksSummary, p.TasksSummary)
	setOptional(&a.StartDate, p.StartDate)
	setOptional(&a.EndDate, p.EndDate)
	setOptional(&a.FarmingPoints, p.FarmingPoints)
}

// normalize trims the optional fields of a new record; blank ones become nil.
func (a *Airdrop) normalize() {
	a.Name = strings.TrimSpace(a.Name)
	for _, f := range []**string{
		&a.Network, &a.Notes, &a.Website, &a.Funds, &a.EstimatedTGE,
		&a.EstimatedVal, &a.TasksSummary, &a.StartDate, &a.EndDate, &a.FarmingPoints,
	} {
		setOptional(f, *f)
	}
}

func setOptional(dst **string, v *string) {
	if v == nil {
		return
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		*dst = nil
		return
	}
	*dst = &s
}

// Validate checks a record against the rules of its schema version.
func (a *Airdrop) Validate() error {
	if a.SchemaVersion < SchemaV1 || a.SchemaVersion > CurrentSchema {
		return fmt.Errorf("%w: unsupported schema version %d", ErrInvalidInput, a.SchemaVersion)
	}

	name := strings.TrimSpace(a.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > maxNameLen {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, maxNameLen)
	}
	if err := a.Status.Validate(); err != nil {
		return err
	}
	if a.Network != nil {
		if err := validateNetwork(*a.Network); err != nil {
			return err
		}
	}

	for _, f := range a.fieldsSince() {
		if f.value != nil && a.SchemaVersion < f.since {
			return fmt.Errorf("%w: %s requires version %d, record is version %d",
				ErrFieldNotInSchema, f.name, f.since, a.SchemaVersion)
		}
	}

	return a.validateDates()
}

type versionedField struct {
	name  string
	since int
	value *string
}

func (a *Airdrop) fieldsSince() []versionedField {
	return []versionedField{
		{"website", SchemaV2, a.Website},
		{"funds", SchemaV2, a.Funds},
		{"estimated_tge", SchemaV2, a.EstimatedTGE},
		{"estimated_value", SchemaV2, a.EstimatedVal},
		{"tasks_summary", SchemaV2, a.TasksSummary},
		{"start_date", SchemaV3, a.StartDate},
		{"end_date", SchemaV3, a.EndDate},
		{"farming_points", SchemaV3, a.FarmingPoints},
	}
}

func (a *Airdrop) validateDates() error {
	var start, end time.Time
	var err error

	if a.StartDate != nil {
		if start, err = time.Parse(dateLayout, *a.StartDate); err != nil {
			return fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if a.EndDate != nil {
		if end, err = time.Parse(dateLayout, *a.EndDate); err != nil {
			return fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if a.StartDate != nil && a.EndDate != nil && end.Before(start) {
		return fmt.Errorf("%w: end_date is before start_date", ErrInvalidInput)
	}
	return nil
}
