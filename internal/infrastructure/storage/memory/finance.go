package memory

import (
	"context"
	"sort"

	"dropops/internal/domain/finance"
)

type FinanceRepository struct{ s *Storage }

func (s *Storage) Finance() *FinanceRepository { return &FinanceRepository{s} }

func (r *FinanceRepository) List(_ context.Context, wallet, airdropID string) ([]finance.Entry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := make([]finance.Entry, 0)
	for _, e := range r.s.finance {
		if airdropID != "" && e.AirdropID != airdropID {
			continue
		}
		if r.s.ownsAirdrop(wallet, e.AirdropID) {
			entries = append(entries, *e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return r.s.before(entries[j].ID, entries[j].CreatedAt, entries[i].ID, entries[i].CreatedAt)
	})
	return entries, nil
}

func (r *FinanceRepository) Create(_ context.Context, wallet string, e *finance.Entry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.ownsAirdrop(wallet, e.AirdropID) {
		return finance.ErrNotFound
	}
	e.ID, e.CreatedAt = r.s.newRow()
	cp := *e
	r.s.finance[e.ID] = &cp
	return nil
}

func (r *FinanceRepository) Delete(_ context.Context, wallet, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.finance[id]
	if !ok || !r.s.ownsAirdrop(wallet, e.AirdropID) {
		return finance.ErrNotFound
	}
	delete(r.s.finance, id)
	return nil
}
