package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dropops/internal/domain/wallet"
)

type Servicer interface {
	SignIn(ctx context.Context, req SignInRequest) (*User, error)
	Find(ctx context.Context, walletAddress string) (*User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// SignIn upserts the identity row for the signing wallet. Calling it again
// for the same address is a no-op apart from last_seen_at.
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*User, error) {
	address, err := s.validator.ValidateSignIn(req)
	if err != nil {
		s.log.Debug("sign-in rejected", "address", req.Address, "error", err)
		if errors.Is(err, wallet.ErrInvalidSignature) {
			return nil, ErrInvalidAuth
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	u, err := s.repo.Upsert(ctx, address)
	if err != nil {
		s.log.Error("failed to upsert user", "address", address, "error", err)
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return u, nil
}

func (s *Service) Find(ctx context.Context, walletAddress string) (*User, error) {
	u, err := s.repo.FindByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
