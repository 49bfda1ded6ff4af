package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultTTL matches the client-side session lifetime.
const DefaultTTL = 7 * 24 * time.Hour

type Servicer interface {
	Create(ctx context.Context, walletAddress string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
	now   func() time.Time
	log   *slog.Logger
}

type Option func(*Service)

// WithCache puts c in front of the repository on Validate.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func NewService(repo Repository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		ttl:  DefaultTTL,
		now:  time.Now,
		log:  log.With("component", "session_service"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

func (s *Service) Create(ctx context.Context, walletAddress string) (string, error) {
	// Генерация токена
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	expiresAt := s.now().Add(s.ttl)
	if err := s.repo.Create(ctx, walletAddress, hashToken(token), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

// Validate resolves token to the wallet address it was issued for.
func (s *Service) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidSession
	}
	hash := hashToken(token)

	if s.cache != nil {
		addr, ok, err := s.cache.Get(ctx, hash)
		if err != nil {
			s.log.Warn("session cache get failed", "error", err)
		} else if ok {
			return addr, nil
		}
	}

	addr, expiresAt, err := s.repo.Validate(ctx, hash)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			return "", ErrInvalidSession
		}
		return "", fmt.Errorf("validate session: %w", err)
	}

	if s.cache != nil {
		if ttl := expiresAt.Sub(s.now()); ttl > 0 {
			if err := s.cache.Set(ctx, hash, addr, ttl); err != nil {
				s.log.Warn("session cache set failed", "error", err)
			}
		}
	}
	return addr, nil
}

// Revoke deletes the session. Revoking an unknown token is not an error.
func (s *Service) Revoke(ctx context.Context, token string) error {
	hash := hashToken(token)

	if s.cache != nil {
		if err := s.cache.Delete(ctx, hash); err != nil {
			s.log.Warn("session cache delete failed", "error", err)
		}
	}

	if err := s.repo.Delete(ctx, hash); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
