package memory

import (
	"context"
	"sort"

	"dropops/internal/domain/task"
)

type TaskRepository struct{ s *Storage }

func (s *Storage) Tasks() *TaskRepository { return &TaskRepository{s} }

func (r *TaskRepository) List(_ context.Context, wallet string, f task.Filter) ([]task.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tasks := make([]task.Task, 0)
	for _, t := range r.s.tasks {
		if t.WalletAddress == wallet && f.Match(*t) {
			tasks = append(tasks, *t)
		}
	}
	// новые сверху
	sort.Slice(tasks, func(i, j int) bool {
		return r.s.before(tasks[j].ID, tasks[j].CreatedAt, tasks[i].ID, tasks[i].CreatedAt)
	})
	return tasks, nil
}

func (r *TaskRepository) Get(_ context.Context, wallet, id string) (*task.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[id]
	if !ok || t.WalletAddress != wallet {
		return nil, task.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *TaskRepository) Create(_ context.Context, t *task.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID, t.CreatedAt = r.s.newRow()
	cp := *t
	r.s.tasks[t.ID] = &cp
	return nil
}

func (r *TaskRepository) Update(_ context.Context, t *task.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.tasks[t.ID]
	if !ok || cur.WalletAddress != t.WalletAddress {
		return task.ErrNotFound
	}
	cp := *t
	cp.CreatedAt = cur.CreatedAt
	r.s.tasks[t.ID] = &cp
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, wallet, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok || t.WalletAddress != wallet {
		return task.ErrNotFound
	}
	delete(r.s.tasks, id)
	return nil
}
