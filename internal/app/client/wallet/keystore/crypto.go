package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	kdfName      = "argon2id"
	saltLength   = 16
	keyLength    = 32
	argon2Time   = 1
	argon2Memory = 64 * 1024 // 64 MB
	argon2Thread = 4
)

// ErrBadPassphrase is returned when a key file cannot be decrypted.
var ErrBadPassphrase = errors.New("keystore: wrong passphrase")

// KDFParams are the argon2id parameters stored with each key.
type KDFParams struct {
	Time    uint32 `json:"time"`
	Memory  uint32 `json:"memory"`
	Threads uint8  `json:"threads"`
}

func DefaultKDFParams() KDFParams {
	return KDFParams{Time: argon2Time, Memory: argon2Memory, Threads: argon2Thread}
}

type cryptoJSON struct {
	KDF        string    `json:"kdf"`
	Params     KDFParams `json:"params"`
	Salt       string    `json:"salt"`
	Nonce      string    `json:"nonce"`
	Ciphertext string    `json:"ciphertext"`
}

func deriveKey(passphrase string, salt []byte, p KDFParams) []byte {
	return argon2.IDKey([]byte(passphrase), salt, p.Time, p.Memory, p.Threads, keyLength)
}

// seal шифрует секрет ключом, выведенным из пароля (AES-256-GCM).
func seal(secret []byte, passphrase string, p KDFParams) (*cryptoJSON, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("ошибка генерации соли: %w", err)
	}

	key := deriveKey(passphrase, salt, p)
	defer clear(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("ошибка генерации nonce: %w", err)
	}

	return &cryptoJSON{
		KDF:        kdfName,
		Params:     p,
		Salt:       hex.EncodeToString(salt),
		Nonce:      hex.EncodeToString(nonce),
		Ciphertext: hex.EncodeToString(gcm.Seal(nil, nonce, secret, nil)),
	}, nil
}

func open(c *cryptoJSON, passphrase string) ([]byte, error) {
	if c.KDF != kdfName {
		return nil, fmt.Errorf("неподдерживаемый алгоритм: %s", c.KDF)
	}

	salt, err := hex.DecodeString(c.Salt)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования соли: %w", err)
	}
	nonce, err := hex.DecodeString(c.Nonce)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования nonce: %w", err)
	}
	ciphertext, err := hex.DecodeString(c.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования ключа: %w", err)
	}

	key := deriveKey(passphrase, salt, c.Params)
	defer clear(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("неверная длина nonce: %d", len(nonce))
	}

	secret, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrBadPassphrase
	}
	return secret, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания шифра: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания GCM: %w", err)
	}
	return gcm, nil
}
