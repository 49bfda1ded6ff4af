package memory

import (
	"context"
	"time"

	"dropops/internal/domain/session"
)

type SessionRepository struct{ s *Storage }

func (s *Storage) Sessions() *SessionRepository { return &SessionRepository{s} }

func (r *SessionRepository) Create(_ context.Context, walletAddress, tokenHash string, expiresAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions[tokenHash] = sessionRow{wallet: walletAddress, expiresAt: expiresAt}
	return nil
}

func (r *SessionRepository) Validate(_ context.Context, tokenHash string) (string, time.Time, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.sessions[tokenHash]
	if !ok || !row.expiresAt.After(r.s.clock()) {
		return "", time.Time{}, session.ErrInvalidSession
	}
	return row.wallet, row.expiresAt, nil
}

func (r *SessionRepository) Delete(_ context.Context, tokenHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.sessions, tokenHash)
	return nil
}

func (r *SessionRepository) DeleteExpired(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	now := r.s.clock()
	for k, row := range r.s.sessions {
		if !row.expiresAt.After(now) {
			delete(r.s.sessions, k)
			n++
		}
	}
	return n, nil
}
