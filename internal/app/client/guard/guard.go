// Package guard gates the commands that need a connected wallet.
package guard

import (
	"context"
	"log/slog"
	"time"

	"dropops/internal/app/client/session"
	"dropops/internal/domain/wallet"
)

const DefaultDelay = 150 * time.Millisecond

type State int

const (
	StateChecking State = iota
	StateResolved
)

// Redirect is returned when there is no usable session.
type Redirect struct {
	To string
}

func (r *Redirect) Error() string {
	return "wallet not connected, run `dropops wallet connect` (redirect to " + r.To + ")"
}

// SessionStore is the read side of the session store.
type SessionStore interface {
	Load() (*session.WalletSession, error)
	Clear() error
}

// AccountSource reports the wallet's active accounts without prompting.
type AccountSource interface {
	Accounts(ctx context.Context) ([]string, error)
}

type Guard struct {
	store    SessionStore
	accounts AccountSource
	delay    time.Duration
	log      *slog.Logger
	wait     func(ctx context.Context, d time.Duration) error
	state    State

	// OnChecking вызывается перед повторной проверкой сессии.
	OnChecking func()
}

type Option func(*Guard)

func WithDelay(d time.Duration) Option {
	return func(g *Guard) { g.delay = d }
}

// WithAccounts enables the active-account comparison.
func WithAccounts(a AccountSource) Option {
	return func(g *Guard) { g.accounts = a }
}

func withWait(wait func(ctx context.Context, d time.Duration) error) Option {
	return func(g *Guard) { g.wait = wait }
}

func New(store SessionStore, log *slog.Logger, opts ...Option) *Guard {
	g := &Guard{
		store: store,
		delay: DefaultDelay,
		log:   log.With("component", "guard"),
		wait:  sleep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Guard) State() State { return g.state }

// Resolve returns the current session. A missing session is re-read once
// after the debounce delay; if it is still missing the result is a *Redirect.
func (g *Guard) Resolve(ctx context.Context) (*session.WalletSession, error) {
	g.state = StateChecking
	defer func() { g.state = StateResolved }()

	ws, err := g.store.Load()
	if err != nil {
		return nil, err
	}
	if ws == nil {
		if g.OnChecking != nil {
			g.OnChecking()
		}
		if err := g.wait(ctx, g.delay); err != nil {
			return nil, err
		}
		if ws, err = g.store.Load(); err != nil {
			return nil, err
		}
	}
	if ws == nil {
		return nil, &Redirect{To: "login"}
	}

	if g.accounts != nil {
		changed, err := g.accountChanged(ctx, ws.Address)
		if err != nil {
			return nil, err
		}
		if changed {
			return nil, &Redirect{To: "login"}
		}
	}
	return ws, nil
}

func (g *Guard) accountChanged(ctx context.Context, address string) (bool, error) {
	accounts, err := g.accounts.Accounts(ctx)
	if err != nil {
		g.log.Warn("failed to read wallet accounts", "error", err)
		return false, nil
	}
	if len(accounts) > 0 && wallet.Equal(accounts[0], address) {
		return false, nil
	}

	g.log.Info("active wallet account changed, session cleared", "address", address)
	return true, g.store.Clear()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
