package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dropops/internal/domain/user"
)

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func (r *UserRepository) Upsert(ctx context.Context, walletAddress string) (*user.User, error) {
	const query = `
		INSERT INTO users (id, wallet_address)
		VALUES ($1, $2)
		ON CONFLICT (wallet_address) DO UPDATE SET last_seen_at = NOW()
		RETURNING id, wallet_address, created_at, last_seen_at`

	var u user.User
	err := r.pool.QueryRow(ctx, query, newID(), walletAddress).
		Scan(&u.ID, &u.WalletAddress, &u.CreatedAt, &u.LastSeenAt)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByWallet(ctx context.Context, walletAddress string) (*user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, wallet_address, created_at, last_seen_at FROM users WHERE wallet_address = $1`,
		walletAddress).Scan(&u.ID, &u.WalletAddress, &u.CreatedAt, &u.LastSeenAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
