package user

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Upsert(ctx context.Context, walletAddress string) (*User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByWallet(ctx context.Context, walletAddress string) (*User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

const lower = "0x52908400098527886e0f7030069857d2e4169ee7"

func TestService_SignIn_UpsertsLowercase(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewSignatureValidator(false), slog.Default())

	created := time.Now().Add(-time.Hour)
	mockRepo.On("Upsert", mock.Anything, lower).Return(&User{ID: "u1", WalletAddress: lower, CreatedAt: created}, nil).Twice()

	first, err := service.SignIn(context.Background(), SignInRequest{Address: "0x52908400098527886E0F7030069857D2E4169EE7"})
	require.NoError(t, err)
	second, err := service.SignIn(context.Background(), SignInRequest{Address: lower})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, lower, second.WalletAddress)
	mockRepo.AssertExpectations(t)
}

func TestService_SignIn_InvalidAddress(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewSignatureValidator(false), slog.Default())

	_, err := service.SignIn(context.Background(), SignInRequest{Address: "vitalik.eth"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_SignIn_BadSignature(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewSignatureValidator(true), slog.Default())

	req := signedRequest(t)
	req.Signature = signedRequest(t).Signature

	_, err := service.SignIn(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_SignIn_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewSignatureValidator(false), slog.Default())

	mockRepo.On("Upsert", mock.Anything, lower).Return(nil, errors.New("database error"))

	_, err := service.SignIn(context.Background(), SignInRequest{Address: lower})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestService_Find(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewSignatureValidator(false), slog.Default())

	mockRepo.On("FindByWallet", mock.Anything, "0xmissing").Return(nil, ErrNotFound)
	mockRepo.On("FindByWallet", mock.Anything, lower).Return(&User{ID: "u1", WalletAddress: lower}, nil)

	_, err := service.Find(context.Background(), "0xmissing")
	assert.ErrorIs(t, err, ErrNotFound)

	u, err := service.Find(context.Background(), lower)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}
