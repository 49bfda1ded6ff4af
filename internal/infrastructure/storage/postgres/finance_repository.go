package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"dropops/internal/domain/finance"
)

type FinanceRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewFinanceRepository(pool *pgxpool.Pool, log *slog.Logger) *FinanceRepository {
	return &FinanceRepository{
		pool: pool,
		log:  log.With("component", "finance_repository"),
	}
}

// List returns entries of the wallet's airdrops. Rows whose airdrop was
// deleted are not returned.
func (r *FinanceRepository) List(ctx context.Context, wallet, airdropID string) ([]finance.Entry, error) {
	query := `
		SELECT f.id, f.airdrop_id, f.cost_type, f.amount, f.created_at
		FROM finance f JOIN airdrops a ON a.id = f.airdrop_id
		WHERE a.wallet_address = $1`
	args := []any{wallet}
	if airdropID != "" {
		if !validID(airdropID) {
			return []finance.Entry{}, nil
		}
		query += ` AND f.airdrop_id = $2`
		args = append(args, airdropID)
	}
	query += ` ORDER BY f.created_at DESC, f.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list finance", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("list finance: %w", err)
	}
	defer rows.Close()

	entries := make([]finance.Entry, 0)
	for rows.Next() {
		var (
			e  finance.Entry
			ct string
		)
		if err := rows.Scan(&e.ID, &e.AirdropID, &ct, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan finance: %w", err)
		}
		e.CostType = finance.CostType(ct)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *FinanceRepository) Create(ctx context.Context, wallet string, e *finance.Entry) error {
	ok, err := owns(ctx, r.pool, wallet, e.AirdropID)
	if err != nil {
		return err
	}
	if !ok {
		return finance.ErrNotFound
	}

	e.ID = newID()
	err = r.pool.QueryRow(ctx,
		`INSERT INTO finance (id, airdrop_id, cost_type, amount) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		e.ID, e.AirdropID, string(e.CostType), e.Amount,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("create finance: %w", err)
	}
	return nil
}

func (r *FinanceRepository) Delete(ctx context.Context, wallet, id string) error {
	if !validID(id) {
		return finance.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM finance
		 WHERE id = $1 AND airdrop_id IN (SELECT id FROM airdrops WHERE wallet_address = $2)`,
		id, wallet)
	if err != nil {
		return fmt.Errorf("delete finance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrNotFound
	}
	return nil
}
