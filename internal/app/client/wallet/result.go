package wallet

import (
	"errors"

	"dropops/internal/domain/wallet"
)

type Status int

const (
	StatusConnected Status = iota
	StatusCancelled
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusCancelled:
		return "cancelled"
	default:
		return "failed"
	}
}

// Result is the outcome of Connect.
type Result struct {
	Status  Status
	Address string
	Err     error
}

func connected(address string) Result { return Result{Status: StatusConnected, Address: address} }
func cancelled() Result               { return Result{Status: StatusCancelled, Err: wallet.ErrUserRejected} }
func failed(err error) Result         { return Result{Status: StatusFailed, Err: err} }

// Message is the short text shown to the user.
func (r Result) Message() string {
	switch r.Status {
	case StatusConnected:
		return "Connected " + wallet.Short(r.Address)
	case StatusCancelled:
		return "Connection cancelled"
	}
	switch {
	case errors.Is(r.Err, wallet.ErrNoProvider):
		return "Please install a wallet to continue"
	case errors.Is(r.Err, wallet.ErrNoAccounts):
		return "No accounts found"
	case r.Err != nil:
		return "Failed to connect wallet: " + r.Err.Error()
	default:
		return "Failed to connect wallet"
	}
}
