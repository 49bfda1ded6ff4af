package user

import (
	"fmt"
	"strings"

	"dropops/internal/domain/wallet"
)

const maxMessageLen = 1024

// Validator - интерфейс для проверки запроса на вход
type Validator interface {
	ValidateSignIn(req SignInRequest) (string, error)
}

// SignatureValidator checks the shape of a sign-in request. With verify on it
// also recovers the signer from the signature and compares it to the address.
type SignatureValidator struct {
	verify bool
}

// NewSignatureValidator создает новый валидатор
func NewSignatureValidator(verify bool) *SignatureValidator {
	return &SignatureValidator{verify: verify}
}

// ValidateSignIn returns the normalized address.
func (v *SignatureValidator) ValidateSignIn(req SignInRequest) (string, error) {
	address, err := wallet.Normalize(req.Address)
	if err != nil {
		return "", err
	}

	if !v.verify {
		return address, nil
	}

	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("message is required")
	}
	if len(req.Message) > maxMessageLen {
		return "", fmt.Errorf("message must be at most %d bytes", maxMessageLen)
	}
	if !strings.Contains(strings.ToLower(req.Message), address) {
		return "", fmt.Errorf("message does not name the wallet")
	}

	if err := wallet.Verify(address, req.Message, req.Signature); err != nil {
		return "", err
	}
	return address, nil
}
