package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dropops/internal/domain/step"
)

type StepRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewStepRepository(pool *pgxpool.Pool, log *slog.Logger) *StepRepository {
	return &StepRepository{
		pool: pool,
		log:  log.With("component", "step_repository"),
	}
}

// owns reports whether airdropID belongs to wallet.
func owns(ctx context.Context, q interface {
	QueryRow(context.Context, string, ...any) pgx.Row
}, wallet, airdropID string) (bool, error) {
	if !validID(airdropID) {
		return false, nil
	}
	var ok bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM airdrops WHERE id = $1 AND wallet_address = $2)`,
		airdropID, wallet).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check airdrop owner: %w", err)
	}
	return ok, nil
}

func (r *StepRepository) List(ctx context.Context, wallet, airdropID string) ([]step.Step, error) {
	ok, err := owns(ctx, r.pool, wallet, airdropID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, step.ErrNotFound
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, airdrop_id, title, is_completed, created_at
		 FROM steps WHERE airdrop_id = $1 ORDER BY created_at ASC, id`,
		airdropID)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	defer rows.Close()

	steps := make([]step.Step, 0)
	for rows.Next() {
		var s step.Step
		if err := rows.Scan(&s.ID, &s.AirdropID, &s.Title, &s.IsCompleted, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		steps = append(steps, s)
	}
	return steps, rows.Err()
}

func (r *StepRepository) Get(ctx context.Context, wallet, id string) (*step.Step, error) {
	if !validID(id) {
		return nil, step.ErrNotFound
	}

	var s step.Step
	err := r.pool.QueryRow(ctx,
		`SELECT s.id, s.airdrop_id, s.title, s.is_completed, s.created_at
		 FROM steps s JOIN airdrops a ON a.id = s.airdrop_id
		 WHERE s.id = $1 AND a.wallet_address = $2`,
		id, wallet).Scan(&s.ID, &s.AirdropID, &s.Title, &s.IsCompleted, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, step.ErrNotFound
		}
		return nil, fmt.Errorf("get step: %w", err)
	}
	return &s, nil
}

// CreateBatch inserts all steps in one transaction. All steps must share
// one airdrop.
func (r *StepRepository) CreateBatch(ctx context.Context, wallet string, steps []*step.Step) error {
	if len(steps) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	ok, err := owns(ctx, tx, wallet, steps[0].AirdropID)
	if err != nil {
		return err
	}
	if !ok {
		return step.ErrNotFound
	}

	batch := &pgx.Batch{}
	for _, s := range steps {
		s.ID = newID()
		batch.Queue(
			`INSERT INTO steps (id, airdrop_id, title, is_completed) VALUES ($1, $2, $3, $4) RETURNING created_at`,
			s.ID, s.AirdropID, s.Title, s.IsCompleted,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for _, s := range steps {
		if err := br.QueryRow().Scan(&s.CreatedAt); err != nil {
			br.Close()
			return fmt.Errorf("insert step: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *StepRepository) Update(ctx context.Context, wallet string, s *step.Step) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE steps SET title = $3, is_completed = $4
		 WHERE id = $1 AND airdrop_id IN (SELECT id FROM airdrops WHERE wallet_address = $2)`,
		s.ID, wallet, s.Title, s.IsCompleted)
	if err != nil {
		return fmt.Errorf("update step: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return step.ErrNotFound
	}
	return nil
}

func (r *StepRepository) Delete(ctx context.Context, wallet, id string) error {
	if !validID(id) {
		return step.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM steps
		 WHERE id = $1 AND airdrop_id IN (SELECT id FROM airdrops WHERE wallet_address = $2)`,
		id, wallet)
	if err != nil {
		return fmt.Errorf("delete step: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return step.ErrNotFound
	}
	return nil
}
