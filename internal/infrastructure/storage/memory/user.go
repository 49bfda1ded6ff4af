package memory

import (
	"context"

	"dropops/internal/domain/user"
)

type UserRepository struct{ s *Storage }

func (s *Storage) Users() *UserRepository { return &UserRepository{s} }

func (r *UserRepository) Upsert(_ context.Context, walletAddress string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if u, ok := r.s.users[walletAddress]; ok {
		u.LastSeenAt = r.s.clock()
		cp := *u
		return &cp, nil
	}

	id, now := r.s.newRow()
	u := &user.User{ID: id, WalletAddress: walletAddress, CreatedAt: now, LastSeenAt: now}
	r.s.users[walletAddress] = u
	cp := *u
	return &cp, nil
}

func (r *UserRepository) FindByWallet(_ context.Context, walletAddress string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[walletAddress]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}
