package airdrop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type Servicer interface {
	List(ctx context.Context, wallet string, filter Filter) ([]Airdrop, error)
	Find(ctx context.Context, wallet, id string) (*Airdrop, error)
	Create(ctx context.Context, wallet string, a *Airdrop) (*Airdrop, error)
	Update(ctx context.Context, wallet, id string, patch Patch) (*Airdrop, error)
	Delete(ctx context.Context, wallet, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "airdrop_service"),
	}
}

// List returns the wallet's airdrops matching filter.
func (s *Service) List(ctx context.Context, wallet string, filter Filter) ([]Airdrop, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	list, err := s.repo.List(ctx, wallet, filter)
	if err != nil {
		s.log.Error("failed to list airdrops", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("list airdrops: %w", err)
	}
	return list, nil
}

func (s *Service) Find(ctx context.Context, wallet, id string) (*Airdrop, error) {
	a, err := s.repo.Get(ctx, wallet, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find airdrop", "wallet", wallet, "airdrop_id", id, "error", err)
		return nil, fmt.Errorf("find airdrop: %w", err)
	}
	return a, nil
}

// Create validates a against its schema version and stores it for wallet.
func (s *Service) Create(ctx context.Context, wallet string, a *Airdrop) (*Airdrop, error) {
	a.WalletAddress = wallet
	a.normalize()
	if a.SchemaVersion == 0 {
		a.SchemaVersion = CurrentSchema
	}
	if a.Status == "" {
		a.Status = StatusTracking
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error("failed to create airdrop", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("create airdrop: %w", err)
	}

	s.log.Info("airdrop created", "airdrop_id", a.ID, "wallet", wallet)
	return a, nil
}

// Update applies patch to the stored record. Last write wins.
func (s *Service) Update(ctx context.Context, wallet, id string, patch Patch) (*Airdrop, error) {
	current, err := s.Find(ctx, wallet, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(current)
	if err := current.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update airdrop", "airdrop_id", id, "error", err)
		return nil, fmt.Errorf("update airdrop: %w", err)
	}

	return current, nil
}

// Delete removes the airdrop only. Steps, tasks and finance rows that point
// at it are left in place.
func (s *Service) Delete(ctx context.Context, wallet, id string) error {
	if err := s.repo.Delete(ctx, wallet, id); err != nil {
		s.log.Error("failed to delete airdrop", "airdrop_id", id, "error", err)
		return fmt.Errorf("delete airdrop: %w", err)
	}

	s.log.Info("airdrop deleted", "airdrop_id", id, "wallet", wallet)
	return nil
}
