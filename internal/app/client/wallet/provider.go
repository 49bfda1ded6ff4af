// Package wallet connects the CLI to a wallet provider and keeps the wallet
// session in sync with the provider's active account.
package wallet

import "context"

// Provider is a wallet the user approves requests in. Dismissed prompts
// return wallet.ErrUserRejected from the domain wallet package.
type Provider interface {
	// RequestAccounts asks the user to expose accounts to DropOps.
	RequestAccounts(ctx context.Context) ([]string, error)
	// Accounts returns the currently exposed accounts without prompting.
	Accounts(ctx context.Context) ([]string, error)
	// SignMessage signs message with the EIP-191 personal_sign scheme.
	SignMessage(ctx context.Context, address, message string) (string, error)
	// SubscribeAccounts delivers the account list every time it changes.
	// The channel is closed when ctx is done.
	SubscribeAccounts(ctx context.Context) (<-chan []string, error)
}
