package wallet

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// TextHash is the EIP-191 personal_sign digest of message.
func TextHash(message string) []byte {
	return accounts.TextHash([]byte(message))
}

// Recover returns the lowercased address that produced signature over message.
// Both the 0/1 and the 27/28 recovery id encodings are accepted.
func Recover(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if len(sig) != crypto.SignatureLength {
		return "", fmt.Errorf("%w: length %d", ErrInvalidSignature, len(sig))
	}

	rs := make([]byte, len(sig))
	copy(rs, sig)
	if rs[crypto.RecoveryIDOffset] >= 27 {
		rs[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(TextHash(message), rs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return strings.ToLower(crypto.PubkeyToAddress(*pub).Hex()), nil
}

// Verify checks that signature over message was made by address.
func Verify(address, message, signature string) error {
	want, err := Normalize(address)
	if err != nil {
		return err
	}
	got, err := Recover(message, signature)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: signed by %s", ErrInvalidSignature, got)
	}
	return nil
}
