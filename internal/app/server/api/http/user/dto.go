package user

import "time"

type signInInput struct {
	Body SignInRequest
}

type SignInRequest struct {
	Address   string `json:"address" minLength:"42" maxLength:"42" doc:"Wallet address, 0x-prefixed hex"`
	Message   string `json:"message,omitempty" maxLength:"1024" doc:"Challenge message the wallet signed"`
	Signature string `json:"signature,omitempty" doc:"personal_sign signature, 0x-prefixed hex"`
}

type signInOutput struct {
	Body SignInResponse
}

type SignInResponse struct {
	Token         string `json:"token"`
	UserID        string `json:"user_id"`
	WalletAddress string `json:"wallet_address"`
	Status        string `json:"status"`
}

type revokeOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}

type meOutput struct {
	Body MeResponse
}

type MeResponse struct {
	UserID        string    `json:"user_id"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
	LastSeenAt    time.Time `json:"last_seen_at"`
}
