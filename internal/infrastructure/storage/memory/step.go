package memory

import (
	"context"
	"sort"

	"dropops/internal/domain/step"
)

type StepRepository struct{ s *Storage }

func (s *Storage) Steps() *StepRepository { return &StepRepository{s} }

func (r *StepRepository) List(_ context.Context, wallet, airdropID string) ([]step.Step, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if !r.s.ownsAirdrop(wallet, airdropID) {
		return nil, step.ErrNotFound
	}

	steps := make([]step.Step, 0)
	for _, st := range r.s.steps {
		if st.AirdropID == airdropID {
			steps = append(steps, *st)
		}
	}
	sort.Slice(steps, func(i, j int) bool {
		return r.s.before(steps[i].ID, steps[i].CreatedAt, steps[j].ID, steps[j].CreatedAt)
	})
	return steps, nil
}

func (r *StepRepository) Get(_ context.Context, wallet, id string) (*step.Step, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st, ok := r.s.steps[id]
	if !ok || !r.s.ownsAirdrop(wallet, st.AirdropID) {
		return nil, step.ErrNotFound
	}
	cp := *st
	return &cp, nil
}

func (r *StepRepository) CreateBatch(_ context.Context, wallet string, steps []*step.Step) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, st := range steps {
		if !r.s.ownsAirdrop(wallet, st.AirdropID) {
			return step.ErrNotFound
		}
	}
	for _, st := range steps {
		st.ID, st.CreatedAt = r.s.newRow()
		cp := *st
		r.s.steps[st.ID] = &cp
	}
	return nil
}

func (r *StepRepository) Update(_ context.Context, wallet string, st *step.Step) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.steps[st.ID]
	if !ok || !r.s.ownsAirdrop(wallet, cur.AirdropID) {
		return step.ErrNotFound
	}
	cur.Title = st.Title
	cur.IsCompleted = st.IsCompleted
	return nil
}

func (r *StepRepository) Delete(_ context.Context, wallet, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	st, ok := r.s.steps[id]
	if !ok || !r.s.ownsAirdrop(wallet, st.AirdropID) {
		return step.ErrNotFound
	}
	delete(r.s.steps, id)
	return nil
}
