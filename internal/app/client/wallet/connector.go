package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dropops/internal/app/client/session"
	"dropops/internal/domain/wallet"
)

// Identity registers the wallet on the server and manages its bearer token.
type Identity interface {
	SignIn(ctx context.Context, address, message, signature string) (string, error)
	SignOut(ctx context.Context, token string) error
}

// SessionStore persists the connected wallet.
type SessionStore interface {
	Load() (*session.WalletSession, error)
	Save(ws session.WalletSession) error
	Clear() error
}

type Connector struct {
	provider Provider
	identity Identity
	store    SessionStore
	log      *slog.Logger
	now      func() time.Time
	nonce    func() string
}

type Option func(*Connector)

func WithClock(now func() time.Time) Option {
	return func(c *Connector) { c.now = now }
}

func WithNonce(nonce func() string) Option {
	return func(c *Connector) { c.nonce = nonce }
}

// NewConnector builds a connector. provider may be nil when no wallet is
// configured; Connect then fails with ErrNoProvider.
func NewConnector(provider Provider, identity Identity, store SessionStore, log *slog.Logger, opts ...Option) *Connector {
	c := &Connector{
		provider: provider,
		identity: identity,
		store:    store,
		log:      log.With("component", "wallet_connector"),
		now:      time.Now,
		nonce:    wallet.NewNonce,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect asks the provider for an account and a signature over the challenge
// message, then stores the session. The signature is not verified here.
func (c *Connector) Connect(ctx context.Context) Result {
	if c.provider == nil {
		return failed(wallet.ErrNoProvider)
	}

	accounts, err := c.provider.RequestAccounts(ctx)
	if err != nil {
		if errors.Is(err, wallet.ErrUserRejected) {
			return cancelled()
		}
		return failed(fmt.Errorf("request accounts: %w", err))
	}
	if len(accounts) == 0 {
		return failed(wallet.ErrNoAccounts)
	}
	address := accounts[0]

	now := c.now()
	message := wallet.ChallengeMessage(address, c.nonce(), now)

	signature, err := c.provider.SignMessage(ctx, address, message)
	if err != nil {
		if errors.Is(err, wallet.ErrUserRejected) {
			return cancelled()
		}
		return failed(fmt.Errorf("sign message: %w", err))
	}

	// Ошибка синхронизации пользователя не прерывает подключение.
	token, err := c.identity.SignIn(ctx, address, message, signature)
	if err != nil {
		c.log.Error("failed to sync wallet identity", "address", address, "error", err)
		token = ""
	}

	ws := session.WalletSession{
		Address:     address,
		ConnectedAt: now.UnixMilli(),
		Token:       token,
	}
	if err := c.store.Save(ws); err != nil {
		return failed(err)
	}

	c.log.Info("wallet connected", "address", address)
	return connected(address)
}

// Disconnect revokes the server token, best effort, and clears the session.
func (c *Connector) Disconnect(ctx context.Context) error {
	ws, err := c.store.Load()
	if err != nil {
		c.log.Warn("failed to read wallet session", "error", err)
	}
	if ws != nil && ws.Token != "" {
		if err := c.identity.SignOut(ctx, ws.Token); err != nil {
			c.log.Warn("failed to revoke session token", "error", err)
		}
	}
	return c.store.Clear()
}

// Watch follows provider account changes until ctx is done and clears the
// session when the active account no longer matches it.
func (c *Connector) Watch(ctx context.Context) error {
	if c.provider == nil {
		return wallet.ErrNoProvider
	}

	ch, err := c.provider.SubscribeAccounts(ctx)
	if err != nil {
		return fmt.Errorf("subscribe accounts: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case accounts, ok := <-ch:
			if !ok {
				return nil
			}
			if _, err := c.AccountsChanged(accounts); err != nil {
				c.log.Error("failed to handle account change", "error", err)
			}
		}
	}
}

// AccountsChanged clears the session when accounts is empty or its first
// entry differs from the session address. It reports whether it did.
func (c *Connector) AccountsChanged(accounts []string) (bool, error) {
	ws, err := c.store.Load()
	if err != nil || ws == nil {
		return false, err
	}
	if len(accounts) > 0 && wallet.Equal(accounts[0], ws.Address) {
		return false, nil
	}

	c.log.Info("wallet account changed, session cleared", "address", ws.Address)
	return true, c.store.Clear()
}
