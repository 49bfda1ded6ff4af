package waitlist

import "context"

type Repository interface {
	List(ctx context.Context, wallet string) ([]Item, error)
	Get(ctx context.Context, wallet, id string) (*Item, error)
	Create(ctx context.Context, it *Item) error
	Update(ctx context.Context, it *Item) error
	Delete(ctx context.Context, wallet, id string) error
}
