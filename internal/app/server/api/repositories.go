package api

import (
	"context"
	"log/slog"

	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/domain/session"
	"dropops/internal/domain/step"
	"dropops/internal/domain/task"
	"dropops/internal/domain/user"
	"dropops/internal/domain/waitlist"
	"dropops/internal/infrastructure/storage/memory"
	"dropops/internal/infrastructure/storage/postgres"
)

// Repositories is the storage backend the API runs on.
type Repositories struct {
	Users    user.Repository
	Sessions session.Repository
	Airdrops airdrop.Repository
	Steps    step.Repository
	Tasks    task.Repository
	Finance  finance.Repository
	Waitlist waitlist.Repository

	// DB is pinged by /api/v1/health; nil skips the database check.
	DB interface {
		Ping(ctx context.Context) error
	}
}

func FromPostgres(s *postgres.Storage, log *slog.Logger) Repositories {
	pool := s.Pool()
	return Repositories{
		Users:    postgres.NewUserRepository(pool, log),
		Sessions: postgres.NewSessionRepository(pool, log),
		Airdrops: postgres.NewAirdropRepository(pool, log),
		Steps:    postgres.NewStepRepository(pool, log),
		Tasks:    postgres.NewTaskRepository(pool, log),
		Finance:  postgres.NewFinanceRepository(pool, log),
		Waitlist: postgres.NewWaitlistRepository(pool, log),
		DB:       s,
	}
}

// FromMemory backs the API with process memory, used by the API tests.
func FromMemory(s *memory.Storage) Repositories {
	return Repositories{
		Users:    s.Users(),
		Sessions: s.Sessions(),
		Airdrops: s.Airdrops(),
		Steps:    s.Steps(),
		Tasks:    s.Tasks(),
		Finance:  s.Finance(),
		Waitlist: s.Waitlist(),
	}
}

// airdropRefs feeds the finance summary with the wallet's airdrops by name.
type airdropRefs struct {
	airdrops airdrop.Servicer
}

func (r airdropRefs) ListRefs(ctx context.Context, wallet string) ([]finance.Ref, error) {
	list, err := r.airdrops.List(ctx, wallet, airdrop.Filter{OrderBy: "name"})
	if err != nil {
		return nil, err
	}
	refs := make([]finance.Ref, len(list))
	for i, a := range list {
		refs[i] = finance.Ref{ID: a.ID, Name: a.Name}
	}
	return refs, nil
}
