package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type Servicer interface {
	List(ctx context.Context, wallet string, filter Filter) ([]Task, error)
	Create(ctx context.Context, wallet string, t *Task) (*Task, error)
	Update(ctx context.Context, wallet, id string, patch Patch) (*Task, error)
	Delete(ctx context.Context, wallet, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "task_service"),
		now:  time.Now,
	}
}

// List returns tasks newest first.
func (s *Service) List(ctx context.Context, wallet string, filter Filter) ([]Task, error) {
	tasks, err := s.repo.List(ctx, wallet, filter)
	if err != nil {
		s.log.Error("failed to list tasks", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *Service) Create(ctx context.Context, wallet string, t *Task) (*Task, error) {
	t.WalletAddress = wallet
	t.Title = strings.TrimSpace(t.Title)
	if t.Type == "" {
		t.Type = TypeOneTime
	}
	if t.AirdropID != nil && *t.AirdropID == "" {
		t.AirdropID = nil
	}
	if t.IsCompleted {
		at := s.now()
		t.LastCompletedAt = &at
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.log.Error("failed to create task", "wallet", wallet, "error", err)
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, wallet, id string, patch Patch) (*Task, error) {
	current, err := s.repo.Get(ctx, wallet, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	patch.Apply(current, s.now())
	if err := current.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update task", "task_id", id, "error", err)
		return nil, fmt.Errorf("update task: %w", err)
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, wallet, id string) error {
	if err := s.repo.Delete(ctx, wallet, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete task", "task_id", id, "error", err)
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
