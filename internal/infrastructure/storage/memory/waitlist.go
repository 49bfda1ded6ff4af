package memory

import (
	"context"
	"sort"

	"dropops/internal/domain/waitlist"
)

type WaitlistRepository struct{ s *Storage }

func (s *Storage) Waitlist() *WaitlistRepository { return &WaitlistRepository{s} }

func (r *WaitlistRepository) List(_ context.Context, wallet string) ([]waitlist.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]waitlist.Item, 0)
	for _, it := range r.s.waitlist {
		if it.WalletAddress == wallet {
			items = append(items, *it)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return r.s.before(items[i].ID, items[i].CreatedAt, items[j].ID, items[j].CreatedAt)
	})
	waitlist.Sort(items)
	return items, nil
}

func (r *WaitlistRepository) Get(_ context.Context, wallet, id string) (*waitlist.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	it, ok := r.s.waitlist[id]
	if !ok || it.WalletAddress != wallet {
		return nil, waitlist.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *WaitlistRepository) Create(_ context.Context, it *waitlist.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it.ID, it.CreatedAt = r.s.newRow()
	cp := *it
	r.s.waitlist[it.ID] = &cp
	return nil
}

func (r *WaitlistRepository) Update(_ context.Context, it *waitlist.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.waitlist[it.ID]
	if !ok || cur.WalletAddress != it.WalletAddress {
		return waitlist.ErrNotFound
	}
	cp := *it
	cp.CreatedAt = cur.CreatedAt
	r.s.waitlist[it.ID] = &cp
	return nil
}

func (r *WaitlistRepository) Delete(_ context.Context, wallet, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.waitlist[id]
	if !ok || it.WalletAddress != wallet {
		return waitlist.ErrNotFound
	}
	delete(r.s.waitlist, id)
	return nil
}
