// Package memory keeps every collection in process memory. It backs the
// server when no database is configured for tests and local runs.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/domain/step"
	"dropops/internal/domain/task"
	"dropops/internal/domain/user"
	"dropops/internal/domain/waitlist"
)

type sessionRow struct {
	wallet    string
	expiresAt time.Time
}

type Storage struct {
	mu sync.RWMutex

	users    map[string]*user.User
	sessions map[string]sessionRow
	airdrops map[string]*airdrop.Airdrop
	steps    map[string]*step.Step
	tasks    map[string]*task.Task
	finance  map[string]*finance.Entry
	waitlist map[string]*waitlist.Item

	// seq упорядочивает записи с одинаковым created_at
	seq   map[string]int
	next  int
	clock func() time.Time
}

func New() *Storage {
	return &Storage{
		users:    make(map[string]*user.User),
		sessions: make(map[string]sessionRow),
		airdrops: make(map[string]*airdrop.Airdrop),
		steps:    make(map[string]*step.Step),
		tasks:    make(map[string]*task.Task),
		finance:  make(map[string]*finance.Entry),
		waitlist: make(map[string]*waitlist.Item),
		seq:      make(map[string]int),
		clock:    time.Now,
	}
}

// newRow returns a fresh id and creation time. Callers hold mu.
func (s *Storage) newRow() (string, time.Time) {
	id := uuid.NewString()
	s.next++
	s.seq[id] = s.next
	return id, s.clock()
}

// before orders rows by creation, ties broken by insertion order.
func (s *Storage) before(idA string, a time.Time, idB string, b time.Time) bool {
	if !a.Equal(b) {
		return a.Before(b)
	}
	return s.seq[idA] < s.seq[idB]
}

func (s *Storage) ownsAirdrop(wallet, airdropID string) bool {
	a, ok := s.airdrops[airdropID]
	return ok && a.WalletAddress == wallet
}

func (s *Storage) Close() error { return nil }
