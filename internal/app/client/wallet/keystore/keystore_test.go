package keystore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropops/internal/domain/wallet"
)

const (
	knownKey     = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	knownAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
	passphrase   = "correct horse battery"
)

type fakePrompter struct {
	confirm    bool
	passphrase string
	prompts    []string
}

func (p *fakePrompter) Confirm(prompt string) (bool, error) {
	p.prompts = append(p.prompts, prompt)
	return p.confirm, nil
}

func (p *fakePrompter) Passphrase(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return p.passphrase, nil
}

func newKeystore(t *testing.T, p Prompter) *Keystore {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	k, err := New(t.TempDir(), p, log,
		WithKDF(KDFParams{Time: 1, Memory: 64, Threads: 1}),
		WithPollInterval(5*time.Millisecond),
	)
	require.NoError(t, err)
	return k
}

func TestKeystore_ImportListUse(t *testing.T) {
	k := newKeystore(t, &fakePrompter{})

	address, err := k.Import(knownKey, passphrase)
	require.NoError(t, err)
	assert.Equal(t, knownAddress, address)

	created, err := k.Create(passphrase)
	require.NoError(t, err)

	list, err := k.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{knownAddress, created}, list)

	active, err := k.Active()
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, k.Use(strings.ToLower(knownAddress)))
	active, err = k.Active()
	require.NoError(t, err)
	assert.Equal(t, knownAddress, active)

	assert.ErrorIs(t, k.Use("0x1111111111111111111111111111111111111111"), ErrUnknownAccount)
}

func TestKeystore_KeyFileIsEncrypted(t *testing.T) {
	k := newKeystore(t, &fakePrompter{})
	_, err := k.Import(knownKey, passphrase)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(k.dir, strings.ToLower(knownAddress)+".json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), strings.TrimPrefix(knownKey, "0x"))
	assert.Contains(t, string(data), `"kdf": "argon2id"`)
}

func TestKeystore_WeakPassphrase(t *testing.T) {
	k := newKeystore(t, &fakePrompter{})
	_, err := k.Create("short")
	assert.ErrorIs(t, err, ErrWeakPassphrase)
}

func TestKeystore_RequestAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("empty keystore", func(t *testing.T) {
		k := newKeystore(t, &fakePrompter{confirm: true})
		accounts, err := k.RequestAccounts(ctx)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("first key becomes active", func(t *testing.T) {
		p := &fakePrompter{confirm: true}
		k := newKeystore(t, p)
		_, err := k.Import(knownKey, passphrase)
		require.NoError(t, err)

		accounts, err := k.RequestAccounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{knownAddress}, accounts)
		require.Len(t, p.prompts, 1)
		assert.Contains(t, p.prompts[0], knownAddress)

		current, err := k.Accounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{knownAddress}, current)
	})

	t.Run("declined", func(t *testing.T) {
		k := newKeystore(t, &fakePrompter{confirm: false})
		_, err := k.Import(knownKey, passphrase)
		require.NoError(t, err)

		_, err = k.RequestAccounts(ctx)
		assert.ErrorIs(t, err, wallet.ErrUserRejected)
	})
}

func TestKeystore_SignMessageRecovers(t *testing.T) {
	p := &fakePrompter{passphrase: passphrase}
	k := newKeystore(t, p)
	_, err := k.Import(knownKey, passphrase)
	require.NoError(t, err)

	message := wallet.ChallengeMessage(knownAddress, "abc123", time.Now())
	sig, err := k.SignMessage(context.Background(), knownAddress, message)
	require.NoError(t, err)

	raw := strings.TrimPrefix(sig, "0x")
	require.Len(t, raw, 130)
	assert.Contains(t, []string{"1b", "1c"}, raw[128:])

	signer, err := wallet.Recover(message, sig)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(knownAddress), signer)
	assert.NoError(t, wallet.Verify(knownAddress, message, sig))

	require.NotEmpty(t, p.prompts)
	assert.Contains(t, p.prompts[len(p.prompts)-1], message)
}

func TestKeystore_SignMessageErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		passphrase string
		address    string
		want       error
	}{
		{"dismissed", "", knownAddress, wallet.ErrUserRejected},
		{"wrong passphrase", "not the passphrase", knownAddress, ErrBadPassphrase},
		{"unknown account", passphrase, "0x1111111111111111111111111111111111111111", ErrUnknownAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := newKeystore(t, &fakePrompter{passphrase: tt.passphrase})
			_, err := k.Import(knownKey, passphrase)
			require.NoError(t, err)

			_, err = k.SignMessage(ctx, tt.address, "hello")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestKeystore_SubscribeAccounts(t *testing.T) {
	k := newKeystore(t, &fakePrompter{})
	_, err := k.Import(knownKey, passphrase)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := k.SubscribeAccounts(ctx)
	require.NoError(t, err)

	require.NoError(t, k.Use(knownAddress))

	select {
	case accounts := <-ch:
		assert.Equal(t, []string{knownAddress}, accounts)
	case <-time.After(2 * time.Second):
		t.Fatal("no account change delivered")
	}

	cancel()
	for range ch {
	}
}
