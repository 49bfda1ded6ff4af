package session

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, walletAddress, tokenHash string, expiresAt time.Time) error
	// Validate returns the wallet of an unexpired session and its expiry.
	Validate(ctx context.Context, tokenHash string) (string, time.Time, error)
	Delete(ctx context.Context, tokenHash string) error
}

// Cache keeps validated token hashes in front of the repository.
type Cache interface {
	Get(ctx context.Context, tokenHash string) (string, bool, error)
	Set(ctx context.Context, tokenHash, walletAddress string, ttl time.Duration) error
	Delete(ctx context.Context, tokenHash string) error
}
