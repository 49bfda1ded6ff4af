package user

import "time"

// User is the identity row of a wallet. WalletAddress is stored lowercase.
type User struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
	LastSeenAt    time.Time `json:"last_seen_at"`
}

// SignInRequest is what the client sends after the wallet signed the
// challenge message.
type SignInRequest struct {
	Address   string
	Message   string
	Signature string
}
