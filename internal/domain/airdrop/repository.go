package airdrop

import "context"

// Repository is scoped by wallet address on every call.
type Repository interface {
	List(ctx context.Context, wallet string, filter Filter) ([]Airdrop, error)
	Get(ctx context.Context, wallet, id string) (*Airdrop, error)
	Create(ctx context.Context, a *Airdrop) error
	Update(ctx context.Context, a *Airdrop) error
	Delete(ctx context.Context, wallet, id string) error
}
