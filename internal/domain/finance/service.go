package finance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// AirdropLister returns the wallet's airdrops ordered by name.
type AirdropLister interface {
	ListRefs(ctx context.Context, wallet string) ([]Ref, error)
}

type Servicer interface {
	List(ctx context.Context, wallet, airdropID string) ([]Entry, error)
	Create(ctx context.Context, wallet string, e *Entry) (*Entry, error)
	Delete(ctx context.Context, wallet, id string) error
	Summary(ctx context.Context, wallet string) (*Report, error)
}

// Report is the finance page: per-airdrop totals and the portfolio line.
type Report struct {
	Airdrops  []AirdropSummary `json:"airdrops"`
	Portfolio Totals           `json:"portfolio"`
}

type Service struct {
	repo     Repository
	airdrops AirdropLister
	log      *slog.Logger
}

func NewService(repo Repository, airdrops AirdropLister, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		airdrops: airdrops,
		log:      log.With("component", "finance_service"),
	}
}

// List returns entries of all the wallet's airdrops, or of one when
// airdropID is set.
func (s *Service) List(ctx context.Context, wallet, airdropID string) ([]Entry, error) {
	entries, err := s.repo.List(ctx, wallet, airdropID)
	if err != nil {
		s.log.Error("failed to list finance entries", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("list finance: %w", err)
	}
	return entries, nil
}

func (s *Service) Create(ctx context.Context, wallet string, e *Entry) (*Entry, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, wallet, e); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to create finance entry", "airdrop_id", e.AirdropID, "error", err)
		return nil, fmt.Errorf("create finance: %w", err)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, wallet, id string) error {
	if err := s.repo.Delete(ctx, wallet, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete finance entry", "entry_id", id, "error", err)
		return fmt.Errorf("delete finance: %w", err)
	}
	return nil
}

func (s *Service) Summary(ctx context.Context, wallet string) (*Report, error) {
	refs, err := s.airdrops.ListRefs(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("list airdrops: %w", err)
	}

	entries, err := s.List(ctx, wallet, "")
	if err != nil {
		return nil, err
	}

	summaries := Summarize(refs, entries)
	return &Report{
		Airdrops:  summaries,
		Portfolio: Portfolio(summaries),
	}, nil
}
