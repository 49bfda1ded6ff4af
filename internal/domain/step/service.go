package step

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type Servicer interface {
	List(ctx context.Context, wallet, airdropID string) ([]Step, error)
	Create(ctx context.Context, wallet, airdropID string, titles []string) ([]Step, error)
	Update(ctx context.Context, wallet, id string, patch Patch) (*Step, error)
	Delete(ctx context.Context, wallet, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "step_service"),
	}
}

// List returns the airdrop's steps oldest first.
func (s *Service) List(ctx context.Context, wallet, airdropID string) ([]Step, error) {
	steps, err := s.repo.List(ctx, wallet, airdropID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to list steps", "airdrop_id", airdropID, "error", err)
		return nil, fmt.Errorf("list steps: %w", err)
	}
	return steps, nil
}

// Create inserts one step per non-blank title. An input with only blank
// titles is a no-op.
func (s *Service) Create(ctx context.Context, wallet, airdropID string, titles []string) ([]Step, error) {
	if airdropID == "" {
		return nil, fmt.Errorf("%w: airdrop_id is required", ErrInvalidInput)
	}

	titles = Titles(titles)
	if len(titles) == 0 {
		return []Step{}, nil
	}

	batch := make([]*Step, len(titles))
	for i, t := range titles {
		batch[i] = &Step{AirdropID: airdropID, Title: t}
	}

	if err := s.repo.CreateBatch(ctx, wallet, batch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to create steps", "airdrop_id", airdropID, "count", len(batch), "error", err)
		return nil, fmt.Errorf("create steps: %w", err)
	}

	out := make([]Step, len(batch))
	for i, st := range batch {
		out[i] = *st
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, wallet, id string, patch Patch) (*Step, error) {
	current, err := s.repo.Get(ctx, wallet, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get step: %w", err)
	}

	patch.Apply(current)
	if current.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, wallet, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update step", "step_id", id, "error", err)
		return nil, fmt.Errorf("update step: %w", err)
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, wallet, id string) error {
	if err := s.repo.Delete(ctx, wallet, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete step", "step_id", id, "error", err)
		return fmt.Errorf("delete step: %w", err)
	}
	return nil
}
