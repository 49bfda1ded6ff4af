// Package views builds the screens of the CLI: scoped reads from the server,
// client-side derivations and the write actions of each screen.
package views

import (
	"context"

	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/domain/step"
	"dropops/internal/domain/task"
	"dropops/internal/domain/waitlist"
)

// AirdropItem is an airdrop with its steps embedded.
type AirdropItem struct {
	airdrop.Airdrop
	Steps []step.Step `json:"steps,omitempty"`
}

// Remote is the server API as seen by the views. Every call is scoped to the
// connected wallet by the session token.
type Remote interface {
	ListAirdrops(ctx context.Context, filter airdrop.Filter, withSteps bool) ([]AirdropItem, error)
	GetAirdrop(ctx context.Context, id string) (*airdrop.Airdrop, error)
	CreateAirdrop(ctx context.Context, a airdrop.Airdrop, steps []string) (*AirdropItem, error)
	UpdateAirdrop(ctx context.Context, id string, patch airdrop.Patch) (*airdrop.Airdrop, error)
	DeleteAirdrop(ctx context.Context, id string) error

	ListSteps(ctx context.Context, airdropID string) ([]step.Step, error)
	AddSteps(ctx context.Context, airdropID string, titles []string) ([]step.Step, error)
	UpdateStep(ctx context.Context, id string, patch step.Patch) (*step.Step, error)
	DeleteStep(ctx context.Context, id string) error

	ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error)
	CreateTask(ctx context.Context, t task.Task) (*task.Task, error)
	UpdateTask(ctx context.Context, id string, patch task.Patch) (*task.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListFinance(ctx context.Context, airdropID string) ([]finance.Entry, error)
	CreateFinance(ctx context.Context, e finance.Entry) (*finance.Entry, error)
	DeleteFinance(ctx context.Context, id string) error

	ListWaitlist(ctx context.Context) ([]waitlist.Item, error)
	CreateWaitlist(ctx context.Context, it waitlist.Item) (*waitlist.Item, error)
	UpdateWaitlist(ctx context.Context, id string, patch waitlist.Patch) (*waitlist.Item, error)
	DeleteWaitlist(ctx context.Context, id string) error
}
