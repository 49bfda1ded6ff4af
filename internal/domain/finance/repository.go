package finance

import "context"

// Repository stores entries. Ownership goes through the parent airdrop's
// wallet; an airdrop of another wallet reads as ErrNotFound.
type Repository interface {
	List(ctx context.Context, wallet, airdropID string) ([]Entry, error)
	Create(ctx context.Context, wallet string, e *Entry) error
	Delete(ctx context.Context, wallet, id string) error
}
