package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dropops/internal/domain/task"
)

const taskColumns = `id, wallet_address, airdrop_id, title, type, is_completed, last_completed_at, created_at`

type TaskRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewTaskRepository(pool *pgxpool.Pool, log *slog.Logger) *TaskRepository {
	return &TaskRepository{
		pool: pool,
		log:  log.With("component", "task_repository"),
	}
}

func (r *TaskRepository) List(ctx context.Context, wallet string, f task.Filter) ([]task.Task, error) {
	where := []string{"wallet_address = $1"}
	args := []any{wallet}
	if f.DailyOnly {
		where = append(where, "airdrop_id IS NULL")
	}
	if f.AirdropID != "" {
		if !validID(f.AirdropID) {
			return []task.Task{}, nil
		}
		args = append(args, f.AirdropID)
		where = append(where, fmt.Sprintf("airdrop_id = $%d", len(args)))
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE `+strings.Join(where, " AND ")+` ORDER BY created_at DESC, id`,
		args...)
	if err != nil {
		r.log.Error("failed to list tasks", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Get(ctx context.Context, wallet, id string) (*task.Task, error) {
	if !validID(id) {
		return nil, task.ErrNotFound
	}
	t, err := scanTask(r.pool.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND wallet_address = $2`, id, wallet))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, task.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	if t.AirdropID != nil && !validID(*t.AirdropID) {
		return fmt.Errorf("%w: airdrop_id is not a valid id", task.ErrInvalidInput)
	}

	t.ID = newID()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tasks (id, wallet_address, airdrop_id, title, type, is_completed, last_completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`,
		t.ID, t.WalletAddress, t.AirdropID, t.Title, string(t.Type), t.IsCompleted, t.LastCompletedAt,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tasks SET title = $3, type = $4, is_completed = $5, last_completed_at = $6
		 WHERE id = $1 AND wallet_address = $2`,
		t.ID, t.WalletAddress, t.Title, string(t.Type), t.IsCompleted, t.LastCompletedAt)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, wallet, id string) error {
	if !validID(id) {
		return task.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND wallet_address = $2`, id, wallet)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*task.Task, error) {
	var (
		t   task.Task
		typ string
	)
	if err := row.Scan(&t.ID, &t.WalletAddress, &t.AirdropID, &t.Title, &typ,
		&t.IsCompleted, &t.LastCompletedAt, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Type = task.Type(typ)
	return &t, nil
}
