package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dropops/internal/domain/waitlist"
)

const waitlistColumns = `id, wallet_address, project_name, to_char(date, 'YYYY-MM-DD'), item_type, created_at`

type WaitlistRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewWaitlistRepository(pool *pgxpool.Pool, log *slog.Logger) *WaitlistRepository {
	return &WaitlistRepository{
		pool: pool,
		log:  log.With("component", "waitlist_repository"),
	}
}

func (r *WaitlistRepository) List(ctx context.Context, wallet string) ([]waitlist.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+waitlistColumns+` FROM waitlist WHERE wallet_address = $1
		 ORDER BY date ASC NULLS LAST, created_at`,
		wallet)
	if err != nil {
		r.log.Error("failed to list waitlist", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	defer rows.Close()

	items := make([]waitlist.Item, 0)
	for rows.Next() {
		it, err := scanWaitlist(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func (r *WaitlistRepository) Get(ctx context.Context, wallet, id string) (*waitlist.Item, error) {
	if !validID(id) {
		return nil, waitlist.ErrNotFound
	}
	it, err := scanWaitlist(r.pool.QueryRow(ctx,
		`SELECT `+waitlistColumns+` FROM waitlist WHERE id = $1 AND wallet_address = $2`, id, wallet))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, waitlist.ErrNotFound
		}
		return nil, fmt.Errorf("get waitlist item: %w", err)
	}
	return it, nil
}

func (r *WaitlistRepository) Create(ctx context.Context, it *waitlist.Item) error {
	it.ID = newID()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO waitlist (id, wallet_address, project_name, date, item_type)
		 VALUES ($1, $2, $3, $4::date, $5) RETURNING created_at`,
		it.ID, it.WalletAddress, it.ProjectName, it.Date, string(it.ItemType),
	).Scan(&it.CreatedAt)
	if err != nil {
		return fmt.Errorf("create waitlist item: %w", err)
	}
	return nil
}

func (r *WaitlistRepository) Update(ctx context.Context, it *waitlist.Item) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE waitlist SET project_name = $3, date = $4::date, item_type = $5
		 WHERE id = $1 AND wallet_address = $2`,
		it.ID, it.WalletAddress, it.ProjectName, it.Date, string(it.ItemType))
	if err != nil {
		return fmt.Errorf("update waitlist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return waitlist.ErrNotFound
	}
	return nil
}

func (r *WaitlistRepository) Delete(ctx context.Context, wallet, id string) error {
	if !validID(id) {
		return waitlist.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM waitlist WHERE id = $1 AND wallet_address = $2`, id, wallet)
	if err != nil {
		return fmt.Errorf("delete waitlist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return waitlist.ErrNotFound
	}
	return nil
}

func scanWaitlist(row pgx.Row) (*waitlist.Item, error) {
	var (
		it  waitlist.Item
		typ string
	)
	if err := row.Scan(&it.ID, &it.WalletAddress, &it.ProjectName, &it.Date, &typ, &it.CreatedAt); err != nil {
		return nil, err
	}
	it.ItemType = waitlist.ItemType(typ)
	return &it, nil
}
