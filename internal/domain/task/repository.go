package task

import "context"

type Repository interface {
	List(ctx context.Context, wallet string, filter Filter) ([]Task, error)
	Get(ctx context.Context, wallet, id string) (*Task, error)
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, wallet, id string) error
}
