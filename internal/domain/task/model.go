package task

import (
	"fmt"
	"strings"
	"time"

	"dropops/internal/domain/progress"
)

type Type string

const (
	TypeDaily   Type = "Daily"
	TypeWeekly  Type = "Weekly"
	TypeOneTime Type = "One-time"
)

var Types = []Type{TypeDaily, TypeWeekly, TypeOneTime}

func (t Type) Validate() error {
	for _, v := range Types {
		if t == v {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown task type %q", ErrInvalidInput, t)
}

// Task is a to-do owned by a wallet. AirdropID is nil for the wallet's own
// daily checklist.
type Task struct {
	ID              string     `json:"id"`
	WalletAddress   string     `json:"wallet_address"`
	AirdropID       *string    `json:"airdrop_id,omitempty"`
	Title           string     `json:"title"`
	Type            Type       `json:"type"`
	IsCompleted     bool       `json:"is_completed"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type Patch struct {
	Title       *string `json:"title,omitempty"`
	Type        *Type   `json:"type,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// Apply copies set fields onto t. Completing a task stamps LastCompletedAt
// with now, un-completing clears it.
func (p Patch) Apply(t *Task, now time.Time) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.IsCompleted != nil && *p.IsCompleted != t.IsCompleted {
		t.IsCompleted = *p.IsCompleted
		if t.IsCompleted {
			at := now
			t.LastCompletedAt = &at
		} else {
			t.LastCompletedAt = nil
		}
	}
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return t.Type.Validate()
}

// Filter selects a wallet's tasks. DailyOnly keeps tasks without an airdrop.
type Filter struct {
	AirdropID string
	DailyOnly bool
}

func (f Filter) Match(t Task) bool {
	if f.DailyOnly && t.AirdropID != nil {
		return false
	}
	if f.AirdropID != "" && (t.AirdropID == nil || *t.AirdropID != f.AirdropID) {
		return false
	}
	return true
}

func Progress(tasks []Task) progress.Summary {
	return progress.Of(tasks, func(t Task) bool { return t.IsCompleted })
}
