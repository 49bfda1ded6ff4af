package user

import (
	"context"
)

type Repository interface {
	// Upsert inserts the address or refreshes last_seen_at of the existing row.
	Upsert(ctx context.Context, walletAddress string) (*User, error)
	FindByWallet(ctx context.Context, walletAddress string) (*User, error)
}
