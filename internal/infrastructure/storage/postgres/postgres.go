package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 5
	connectDelay    = time.Second
	pingTimeout     = 3 * time.Second
)

type Storage struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New opens the pool and waits for the database to answer a ping.
func New(ctx context.Context, databaseURI string, log *slog.Logger) (*Storage, error) {
	log = log.With("component", "postgres")

	pool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	err = retry.Do(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return pool.Ping(pingCtx)
	},
		retry.Attempts(connectAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(connectDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("database not ready", "attempt", n+1, "error", err)
		}),
		retry.Context(ctx),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{pool: pool, log: log}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func newID() string {
	return uuid.NewString()
}

// validID отсекает строки, которые postgres не примет как UUID.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}
