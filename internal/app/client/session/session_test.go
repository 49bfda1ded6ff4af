package session

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStorage map[string]string

func (m mapStorage) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapStorage) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m mapStorage) Delete(key string) error {
	delete(m, key)
	return nil
}

func newStore(storage Storage, now *time.Time) *Store {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(storage, log, WithClock(func() time.Time { return *now }))
}

func TestStore_SaveLoad(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	storage := mapStorage{}
	store := newStore(storage, &now)

	ws, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, ws)

	want := WalletSession{Address: "0xabc", ConnectedAt: now.UnixMilli(), Token: "tok"}
	require.NoError(t, store.Save(want))
	assert.Contains(t, storage[Key], `"connectedAt":`)

	ws, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.Equal(t, want, *ws)
}

func TestStore_Expiry(t *testing.T) {
	connected := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		elapsed time.Duration
		kept    bool
	}{
		{"one day", 24 * time.Hour, true},
		{"exactly seven days", MaxAge, true},
		{"eight days", 8 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := connected
			storage := mapStorage{}
			store := newStore(storage, &now)
			require.NoError(t, store.Save(WalletSession{Address: "0xabc", ConnectedAt: connected.UnixMilli()}))

			now = connected.Add(tt.elapsed)
			ws, err := store.Load()
			require.NoError(t, err)

			if tt.kept {
				assert.NotNil(t, ws)
				assert.Contains(t, storage, Key)
			} else {
				assert.Nil(t, ws)
				assert.NotContains(t, storage, Key)
			}
		})
	}
}

func TestStore_UnparsableEvicted(t *testing.T) {
	now := time.Now()
	storage := mapStorage{Key: "{not json"}
	store := newStore(storage, &now)

	ws, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, ws)
	assert.NotContains(t, storage, Key)
}

func TestStore_Clear(t *testing.T) {
	now := time.Now()
	storage := mapStorage{}
	store := newStore(storage, &now)

	require.NoError(t, store.Save(WalletSession{Address: "0xabc", ConnectedAt: now.UnixMilli()}))
	require.NoError(t, store.Clear())

	ws, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, ws)
}

func TestStore_ClearWithoutSession(t *testing.T) {
	now := time.Now()
	store := newStore(mapStorage{}, &now)

	require.NoError(t, store.Clear())
	assert.Equal(t, now.UnixMilli(), store.Now())
}
