package user

import (
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropops/internal/domain/wallet"
)

func signedRequest(t *testing.T) SignInRequest {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	address := crypto.PubkeyToAddress(key.PublicKey).Hex()
	message := wallet.ChallengeMessage(address, "abc123", time.Now())

	sig, err := crypto.Sign(wallet.TextHash(message), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	return SignInRequest{Address: address, Message: message, Signature: hexutil.Encode(sig)}
}

func TestSignatureValidator_NoVerify(t *testing.T) {
	validator := NewSignatureValidator(false)

	tests := []struct {
		name    string
		req     SignInRequest
		want    string
		wantErr bool
	}{
		{
			name: "checksummed address is lowercased",
			req:  SignInRequest{Address: "0x52908400098527886E0F7030069857D2E4169EE7"},
			want: "0x52908400098527886e0f7030069857d2e4169ee7",
		},
		{
			name: "signature is not checked",
			req:  SignInRequest{Address: "0x52908400098527886e0f7030069857d2e4169ee7", Signature: "garbage"},
			want: "0x52908400098527886e0f7030069857d2e4169ee7",
		},
		{
			name:    "missing prefix",
			req:     SignInRequest{Address: "52908400098527886e0f7030069857d2e4169ee7"},
			wantErr: true,
		},
		{
			name:    "too short",
			req:     SignInRequest{Address: "0x1234"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.ValidateSignIn(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, wallet.ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignatureValidator_Verify(t *testing.T) {
	validator := NewSignatureValidator(true)
	req := signedRequest(t)

	got, err := validator.ValidateSignIn(req)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(req.Address), got)

	other := signedRequest(t)
	forged := req
	forged.Signature = other.Signature
	_, err = validator.ValidateSignIn(forged)
	assert.ErrorIs(t, err, wallet.ErrInvalidSignature)

	empty := req
	empty.Message = " "
	_, err = validator.ValidateSignIn(empty)
	assert.Error(t, err)
}
