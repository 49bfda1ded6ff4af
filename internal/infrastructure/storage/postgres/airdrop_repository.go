package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dropops/internal/domain/airdrop"
)

const airdropColumns = `
	id, wallet_address, schema_version, name, network, status, notes,
	website, funds, estimated_tge, estimated_value, tasks_summary,
	to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
	farming_points, created_at`

type AirdropRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAirdropRepository(pool *pgxpool.Pool, log *slog.Logger) *AirdropRepository {
	return &AirdropRepository{
		pool: pool,
		log:  log.With("component", "airdrop_repository"),
	}
}

func (r *AirdropRepository) List(ctx context.Context, wallet string, f airdrop.Filter) ([]airdrop.Airdrop, error) {
	var (
		where = []string{"wallet_address = $1"}
		args  = []any{wallet}
	)
	if f.Status != "" {
		args = append(args, string(f.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Network != "" {
		args = append(args, f.Network)
		where = append(where, fmt.Sprintf("network = $%d", len(args)))
	}

	// OrderBy проверен в airdrop.Filter.Normalize
	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	query := fmt.Sprintf(`SELECT %s FROM airdrops WHERE %s ORDER BY %s %s NULLS LAST, id`,
		airdropColumns, strings.Join(where, " AND "), f.OrderBy, dir)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list airdrops", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("list airdrops: %w", err)
	}
	defer rows.Close()

	list := make([]airdrop.Airdrop, 0)
	for rows.Next() {
		a, err := scanAirdrop(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate airdrops: %w", err)
	}
	return list, nil
}

func (r *AirdropRepository) Get(ctx context.Context, wallet, id string) (*airdrop.Airdrop, error) {
	if !validID(id) {
		return nil, airdrop.ErrNotFound
	}

	row := r.pool.QueryRow(ctx,
		`SELECT `+airdropColumns+` FROM airdrops WHERE id = $1 AND wallet_address = $2`,
		id, wallet)

	a, err := scanAirdrop(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, airdrop.ErrNotFound
		}
		r.log.Error("failed to get airdrop", "airdrop_id", id, "error", err)
		return nil, err
	}
	return a, nil
}

func (r *AirdropRepository) Create(ctx context.Context, a *airdrop.Airdrop) error {
	const query = `
		INSERT INTO airdrops (
			id, wallet_address, schema_version, name, network, status, notes,
			website, funds, estimated_tge, estimated_value, tasks_summary,
			start_date, end_date, farming_points)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::date, $14::date, $15)
		RETURNING created_at`

	a.ID = newID()
	err := r.pool.QueryRow(ctx, query,
		a.ID, a.WalletAddress, a.SchemaVersion, a.Name, a.Network, string(a.Status), a.Notes,
		a.Website, a.Funds, a.EstimatedTGE, a.EstimatedVal, a.TasksSummary,
		a.StartDate, a.EndDate, a.FarmingPoints,
	).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("create airdrop: %w", err)
	}
	return nil
}

func (r *AirdropRepository) Update(ctx context.Context, a *airdrop.Airdrop) error {
	const query = `
		UPDATE airdrops SET
			schema_version = $3, name = $4, network = $5, status = $6, notes = $7,
			website = $8, funds = $9, estimated_tge = $10, estimated_value = $11,
			tasks_summary = $12, start_date = $13::date, end_date = $14::date,
			farming_points = $15
		WHERE id = $1 AND wallet_address = $2`

	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.WalletAddress, a.SchemaVersion, a.Name, a.Network, string(a.Status), a.Notes,
		a.Website, a.Funds, a.EstimatedTGE, a.EstimatedVal, a.TasksSummary,
		a.StartDate, a.EndDate, a.FarmingPoints,
	)
	if err != nil {
		return fmt.Errorf("update airdrop: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return airdrop.ErrNotFound
	}
	return nil
}

// Delete удаляет только сам airdrop. Отсутствующая строка не ошибка.
func (r *AirdropRepository) Delete(ctx context.Context, wallet, id string) error {
	if !validID(id) {
		return nil
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM airdrops WHERE id = $1 AND wallet_address = $2`, id, wallet)
	if err != nil {
		return fmt.Errorf("delete airdrop: %w", err)
	}
	return nil
}

func scanAirdrop(row pgx.Row) (*airdrop.Airdrop, error) {
	var (
		a      airdrop.Airdrop
		status string
	)
	err := row.Scan(
		&a.ID, &a.WalletAddress, &a.SchemaVersion, &a.Name, &a.Network, &status, &a.Notes,
		&a.Website, &a.Funds, &a.EstimatedTGE, &a.EstimatedVal, &a.TasksSummary,
		&a.StartDate, &a.EndDate, &a.FarmingPoints, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Status = airdrop.Status(status)
	return &a, nil
}
