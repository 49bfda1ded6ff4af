// Package keystore is a local wallet: secp256k1 keys encrypted with a
// passphrase, one of which is the active account.
package keystore

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"dropops/internal/domain/wallet"
)

const (
	activeFile    = "active"
	keySuffix     = ".json"
	filePerm      = 0o600
	dirPerm       = 0o700
	defaultPoll   = time.Second
	minPassphrase = 8
)

var (
	ErrUnknownAccount = errors.New("keystore: unknown account")
	ErrWeakPassphrase = fmt.Errorf("keystore: passphrase must be at least %d characters", minPassphrase)
)

// Prompter asks the user to approve requests.
type Prompter interface {
	Confirm(prompt string) (bool, error)
	Passphrase(prompt string) (string, error)
}

type keyFile struct {
	Address   string      `json:"address"`
	Crypto    *cryptoJSON `json:"crypto"`
	CreatedAt time.Time   `json:"created_at"`
}

type Keystore struct {
	dir    string
	prompt Prompter
	log    *slog.Logger
	kdf    KDFParams
	poll   time.Duration
}

type Option func(*Keystore)

// WithKDF overrides the argon2id parameters of new keys.
func WithKDF(p KDFParams) Option {
	return func(k *Keystore) { k.kdf = p }
}

// WithPollInterval sets how often SubscribeAccounts checks the active account.
func WithPollInterval(d time.Duration) Option {
	return func(k *Keystore) { k.poll = d }
}

func New(dir string, prompt Prompter, log *slog.Logger, opts ...Option) (*Keystore, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("ошибка создания директории ключей: %w", err)
	}
	k := &Keystore{
		dir:    dir,
		prompt: prompt,
		log:    log.With("component", "keystore"),
		kdf:    DefaultKDFParams(),
		poll:   defaultPoll,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// Create generates a new key and returns its checksummed address.
func (k *Keystore) Create(passphrase string) (string, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("ошибка генерации ключа: %w", err)
	}
	return k.store(key, passphrase)
}

// Import stores a hex encoded private key.
func (k *Keystore) Import(hexKey, passphrase string) (string, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return "", fmt.Errorf("неверный приватный ключ: %w", err)
	}
	return k.store(key, passphrase)
}

func (k *Keystore) store(key *ecdsa.PrivateKey, passphrase string) (string, error) {
	if len(passphrase) < minPassphrase {
		return "", ErrWeakPassphrase
	}

	secret := crypto.FromECDSA(key)
	defer clear(secret)

	c, err := seal(secret, passphrase, k.kdf)
	if err != nil {
		return "", err
	}

	address := crypto.PubkeyToAddress(key.PublicKey).Hex()
	data, err := json.MarshalIndent(keyFile{Address: address, Crypto: c, CreatedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(k.keyPath(address), data, filePerm); err != nil {
		return "", fmt.Errorf("ошибка сохранения ключа: %w", err)
	}

	k.log.Info("key stored", "address", address)
	return address, nil
}

// List returns the checksummed addresses of all stored keys, sorted.
func (k *Keystore) List() ([]string, error) {
	entries, err := os.ReadDir(k.dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения директории ключей: %w", err)
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, keySuffix) {
			continue
		}
		kf, err := k.readKey(filepath.Join(k.dir, name))
		if err != nil {
			k.log.Warn("skipping unreadable key file", "file", name, "error", err)
			continue
		}
		out = append(out, kf.Address)
	}
	slices.Sort(out)
	return out, nil
}

// Use makes address the active account.
func (k *Keystore) Use(address string) error {
	kf, err := k.find(address)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(k.dir, activeFile), []byte(kf.Address+"\n"), filePerm); err != nil {
		return fmt.Errorf("ошибка сохранения активного аккаунта: %w", err)
	}
	return nil
}

// Active returns the active account or "" when none is selected.
func (k *Keystore) Active() (string, error) {
	data, err := os.ReadFile(filepath.Join(k.dir, activeFile))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("ошибка чтения активного аккаунта: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// RequestAccounts asks the user to expose the active account. With no active
// account the first stored key becomes active.
func (k *Keystore) RequestAccounts(_ context.Context) ([]string, error) {
	active, err := k.Active()
	if err != nil {
		return nil, err
	}
	if active == "" {
		list, err := k.List()
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return []string{}, nil
		}
		active = list[0]
		if err := k.Use(active); err != nil {
			return nil, err
		}
	}

	ok, err := k.prompt.Confirm(fmt.Sprintf("Подключить DropOps к %s?", active))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, wallet.ErrUserRejected
	}
	return []string{active}, nil
}

func (k *Keystore) Accounts(_ context.Context) ([]string, error) {
	active, err := k.Active()
	if err != nil {
		return nil, err
	}
	if active == "" {
		return []string{}, nil
	}
	return []string{active}, nil
}

// SignMessage signs message with the EIP-191 personal_sign scheme. The
// recovery id is returned as 27/28.
func (k *Keystore) SignMessage(_ context.Context, address, message string) (string, error) {
	kf, err := k.find(address)
	if err != nil {
		return "", err
	}

	passphrase, err := k.prompt.Passphrase(fmt.Sprintf("%s\n\nПароль ключа %s (пусто - отклонить): ", message, kf.Address))
	if err != nil {
		return "", err
	}
	if passphrase == "" {
		return "", wallet.ErrUserRejected
	}

	secret, err := open(kf.Crypto, passphrase)
	if err != nil {
		return "", err
	}
	defer clear(secret)

	key, err := crypto.ToECDSA(secret)
	if err != nil {
		return "", fmt.Errorf("повреждённый ключ: %w", err)
	}

	sig, err := crypto.Sign(wallet.TextHash(message), key)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}

// SubscribeAccounts polls the active account and sends the new account list
// whenever it changes.
func (k *Keystore) SubscribeAccounts(ctx context.Context) (<-chan []string, error) {
	last, err := k.Active()
	if err != nil {
		return nil, err
	}

	ch := make(chan []string)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(k.poll)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			active, err := k.Active()
			if err != nil {
				k.log.Warn("failed to read active account", "error", err)
				continue
			}
			if active == last {
				continue
			}
			last = active

			accounts := []string{}
			if active != "" {
				accounts = []string{active}
			}
			select {
			case ch <- accounts:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func (k *Keystore) keyPath(address string) string {
	return filepath.Join(k.dir, strings.ToLower(address)+keySuffix)
}

func (k *Keystore) find(address string) (*keyFile, error) {
	normalized, err := wallet.Normalize(address)
	if err != nil {
		return nil, err
	}
	kf, err := k.readKey(k.keyPath(normalized))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, address)
	}
	return kf, err
}

func (k *Keystore) readKey(path string) (*keyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var kf keyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("ошибка разбора файла ключа: %w", err)
	}
	if kf.Crypto == nil || kf.Address == "" {
		return nil, errors.New("файл ключа неполный")
	}
	return &kf, nil
}
