package guard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropops/internal/app/client/session"
)

type fakeStore struct {
	ws    *session.WalletSession
	loads int
}

func (s *fakeStore) Load() (*session.WalletSession, error) {
	s.loads++
	return s.ws, nil
}

func (s *fakeStore) Clear() error {
	s.ws = nil
	return nil
}

type fakeAccounts struct {
	list []string
	err  error
}

func (a fakeAccounts) Accounts(context.Context) ([]string, error) { return a.list, a.err }

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestGuard_SessionPresent(t *testing.T) {
	store := &fakeStore{ws: &session.WalletSession{Address: "0xabc"}}
	g := New(store, discard, withWait(func(context.Context, time.Duration) error {
		t.Fatal("no debounce expected")
		return nil
	}))

	ws, err := g.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xabc", ws.Address)
	assert.Equal(t, StateResolved, g.State())
	assert.Equal(t, 1, store.loads)
}

func TestGuard_RedirectAfterDebounce(t *testing.T) {
	store := &fakeStore{}
	var waited time.Duration
	checking := false
	g := New(store, discard, WithDelay(200*time.Millisecond), withWait(func(_ context.Context, d time.Duration) error {
		waited = d
		return nil
	}))
	g.OnChecking = func() { checking = true }

	ws, err := g.Resolve(context.Background())
	assert.Nil(t, ws)

	var redirect *Redirect
	require.ErrorAs(t, err, &redirect)
	assert.Equal(t, "login", redirect.To)
	assert.Equal(t, 200*time.Millisecond, waited)
	assert.True(t, checking)
	assert.Equal(t, 2, store.loads)
}

func TestGuard_SessionAppearsWithinDebounce(t *testing.T) {
	store := &fakeStore{}
	g := New(store, discard, withWait(func(context.Context, time.Duration) error {
		store.ws = &session.WalletSession{Address: "0xabc"}
		return nil
	}))

	ws, err := g.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xabc", ws.Address)
}

func TestGuard_RealDelay(t *testing.T) {
	g := New(&fakeStore{}, discard, WithDelay(10*time.Millisecond))

	start := time.Now()
	_, err := g.Resolve(context.Background())
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	var redirect *Redirect
	assert.ErrorAs(t, err, &redirect)
}

func TestGuard_CancelledWhileChecking(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(&fakeStore{}, discard).Resolve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGuard_AccountComparison(t *testing.T) {
	tests := []struct {
		name     string
		accounts fakeAccounts
		ok       bool
	}{
		{"same account any case", fakeAccounts{list: []string{"0xABC"}}, true},
		{"switched account", fakeAccounts{list: []string{"0xdef"}}, false},
		{"no accounts", fakeAccounts{}, false},
		{"provider error keeps session", fakeAccounts{err: errors.New("keystore unreadable")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{ws: &session.WalletSession{Address: "0xabc"}}
			g := New(store, discard, WithAccounts(tt.accounts))

			ws, err := g.Resolve(context.Background())
			if tt.ok {
				require.NoError(t, err)
				assert.NotNil(t, ws)
				assert.NotNil(t, store.ws)
				return
			}
			var redirect *Redirect
			assert.ErrorAs(t, err, &redirect)
			assert.Nil(t, store.ws)
		})
	}
}
