package wallet

import "errors"

var (
	ErrNoProvider       = errors.New("no wallet provider")
	ErrUserRejected     = errors.New("user rejected the request")
	ErrNoAccounts       = errors.New("no accounts found")
	ErrInvalidAddress   = errors.New("invalid wallet address")
	ErrInvalidSignature = errors.New("invalid signature")
)
