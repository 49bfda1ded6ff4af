package memory

import (
	"context"
	"sort"

	"dropops/internal/domain/airdrop"
)

type AirdropRepository struct{ s *Storage }

func (s *Storage) Airdrops() *AirdropRepository { return &AirdropRepository{s} }

func (r *AirdropRepository) List(_ context.Context, wallet string, f airdrop.Filter) ([]airdrop.Airdrop, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]airdrop.Airdrop, 0)
	for _, a := range r.s.airdrops {
		if a.WalletAddress == wallet && f.Match(*a) {
			list = append(list, *a)
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if f.Desc {
			a, b = b, a
		}
		switch f.OrderBy {
		case "name":
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		case "status":
			if a.Status != b.Status {
				return a.Status < b.Status
			}
		case "network":
			an, bn := deref(a.Network), deref(b.Network)
			if an != bn {
				return an < bn
			}
		}
		return r.s.before(a.ID, a.CreatedAt, b.ID, b.CreatedAt)
	})
	return list, nil
}

func (r *AirdropRepository) Get(_ context.Context, wallet, id string) (*airdrop.Airdrop, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.airdrops[id]
	if !ok || a.WalletAddress != wallet {
		return nil, airdrop.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *AirdropRepository) Create(_ context.Context, a *airdrop.Airdrop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID, a.CreatedAt = r.s.newRow()
	cp := *a
	r.s.airdrops[a.ID] = &cp
	return nil
}

func (r *AirdropRepository) Update(_ context.Context, a *airdrop.Airdrop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.airdrops[a.ID]
	if !ok || cur.WalletAddress != a.WalletAddress {
		return airdrop.ErrNotFound
	}
	cp := *a
	cp.CreatedAt = cur.CreatedAt
	r.s.airdrops[a.ID] = &cp
	return nil
}

// Delete не трогает шаги, задачи и финансы airdrop.
func (r *AirdropRepository) Delete(_ context.Context, wallet, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a, ok := r.s.airdrops[id]; ok && a.WalletAddress == wallet {
		delete(r.s.airdrops, id)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
