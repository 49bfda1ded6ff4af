package waitlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

type Servicer interface {
	List(ctx context.Context, wallet string) ([]Item, error)
	Create(ctx context.Context, wallet string, it *Item) (*Item, error)
	Update(ctx context.Context, wallet, id string, patch Patch) (*Item, error)
	Delete(ctx context.Context, wallet, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "waitlist_service"),
	}
}

func (s *Service) List(ctx context.Context, wallet string) ([]Item, error) {
	items, err := s.repo.List(ctx, wallet)
	if err != nil {
		s.log.Error("failed to list waitlist", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, wallet string, it *Item) (*Item, error) {
	it.WalletAddress = wallet
	it.ProjectName = strings.TrimSpace(it.ProjectName)
	if it.ItemType == "" {
		it.ItemType = TypeProject
	}
	if it.Date != nil && strings.TrimSpace(*it.Date) == "" {
		it.Date = nil
	}

	if err := it.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, it); err != nil {
		s.log.Error("failed to create waitlist item", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("create waitlist item: %w", err)
	}
	return it, nil
}

func (s *Service) Update(ctx context.Context, wallet, id string, patch Patch) (*Item, error) {
	current, err := s.repo.Get(ctx, wallet, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get waitlist item: %w", err)
	}

	patch.Apply(current)
	if err := current.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update waitlist item", "item_id", id, "error", err)
		return nil, fmt.Errorf("update waitlist item: %w", err)
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, wallet, id string) error {
	if err := s.repo.Delete(ctx, wallet, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete waitlist item", "item_id", id, "error", err)
		return fmt.Errorf("delete waitlist item: %w", err)
	}
	return nil
}
