// Package session хранит подключённый кошелёк между запусками CLI.
package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

const (
	// Key - ключ записи сессии в хранилище.
	Key = "dropops_wallet_session"

	// MaxAge - срок жизни сессии, после него Load удаляет запись.
	MaxAge = 7 * 24 * time.Hour
)

// WalletSession - сохранённое подключение. ConnectedAt в unix-миллисекундах.
type WalletSession struct {
	Address     string `json:"address"`
	ConnectedAt int64  `json:"connectedAt"`
	Token       string `json:"token,omitempty"`
}

// Storage - постоянное хранилище строк по ключу.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store читает и пишет сессию кошелька в Storage.
type Store struct {
	storage Storage
	log     *slog.Logger
	now     func() time.Time
}

// Option настраивает Store.
type Option func(*Store)

// WithClock подменяет текущее время (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore создает Store поверх storage.
func NewStore(storage Storage, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		log:     log.With("component", "session_store"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load возвращает сохранённую сессию или nil, если её нет. Нечитаемые записи
// и записи старше MaxAge удаляются.
func (s *Store) Load() (*WalletSession, error) {
	raw, ok, err := s.storage.Get(Key)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var ws WalletSession
	if err := json.Unmarshal([]byte(raw), &ws); err != nil || ws.Address == "" {
		s.log.Warn("dropping unreadable wallet session", "error", err)
		return nil, s.Clear()
	}

	if s.now().UnixMilli()-ws.ConnectedAt > MaxAge.Milliseconds() {
		s.log.Info("wallet session expired", "address", ws.Address)
		return nil, s.Clear()
	}
	return &ws, nil
}

// Save перезаписывает сохранённую сессию.
func (s *Store) Save(ws WalletSession) error {
	data, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.storage.Set(Key, string(data)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear удаляет сессию. Отсутствие записи ошибкой не считается.
func (s *Store) Clear() error {
	if err := s.storage.Delete(Key); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Now возвращает время часов Store в unix-миллисекундах.
func (s *Store) Now() int64 {
	return s.now().UnixMilli()
}
