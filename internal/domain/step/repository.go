package step

import "context"

// Repository stores steps. Every method is scoped by the wallet that owns
// the parent airdrop and reports ErrNotFound when the airdrop belongs to
// someone else.
type Repository interface {
	List(ctx context.Context, wallet, airdropID string) ([]Step, error)
	Get(ctx context.Context, wallet, id string) (*Step, error)
	CreateBatch(ctx context.Context, wallet string, steps []*Step) error
	Update(ctx context.Context, wallet string, s *Step) error
	Delete(ctx context.Context, wallet, id string) error
}
