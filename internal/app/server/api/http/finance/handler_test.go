package finance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dropops/internal/app/server/api/http/middleware/auth"
	"dropops/internal/domain/finance"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, wallet, airdropID string) ([]finance.Entry, error) {
	args := m.Called(ctx, wallet, airdropID)
	return args.Get(0).([]finance.Entry), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, wallet string, e *finance.Entry) (*finance.Entry, error) {
	args := m.Called(ctx, wallet, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Entry), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, wallet, id string) error {
	return m.Called(ctx, wallet, id).Error(0)
}

func (m *MockService) Summary(ctx context.Context, wallet string) (*finance.Report, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Report), args.Error(1)
}

const testWallet = "0x52908400098527886e0f7030069857d2e4169ee7"

func newTestHandler(svc finance.Servicer) *Handler {
	return NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se), "expected huma.StatusError, got %v", err)
	return se.GetStatus()
}

func TestHandler_Create(t *testing.T) {
	authCtx := auth.WithWallet(context.Background(), testWallet)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		want := &finance.Entry{AirdropID: "a1", CostType: finance.CostGasFee, Amount: 12.5}
		svc.On("Create", authCtx, testWallet, want).
			Return(&finance.Entry{ID: "f1", AirdropID: "a1", CostType: finance.CostGasFee, Amount: 12.5}, nil)

		input := &createInput{}
		input.Body = CreateRequest{AirdropID: "a1", CostType: "Gas Fee", Amount: 12.5}

		out, err := h.create(authCtx, input)
		require.NoError(t, err)
		assert.Equal(t, "f1", out.Body.ID)
		svc.AssertExpectations(t)
	})

	t.Run("UnknownAirdrop", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		svc.On("Create", authCtx, testWallet, mock.Anything).Return(nil, finance.ErrNotFound)

		input := &createInput{}
		input.Body = CreateRequest{AirdropID: "nope", CostType: "Other", Amount: 1}

		_, err := h.create(authCtx, input)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("NoWallet", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)

		_, err := h.create(context.Background(), &createInput{})
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandler_Summary(t *testing.T) {
	authCtx := auth.WithWallet(context.Background(), testWallet)

	svc := new(MockService)
	h := newTestHandler(svc)

	report := &finance.Report{
		Airdrops:  []finance.AirdropSummary{},
		Portfolio: finance.Totals{TotalCost: 100, ClaimedReward: 150, ProfitLoss: 50, ROIPercent: 50},
	}
	svc.On("Summary", authCtx, testWallet).Return(report, nil)

	out, err := h.summary(authCtx, nil)
	require.NoError(t, err)
	assert.Equal(t, *report, out.Body)
}

func TestHandler_ListInternalError(t *testing.T) {
	authCtx := auth.WithWallet(context.Background(), testWallet)

	svc := new(MockService)
	h := newTestHandler(svc)
	svc.On("List", authCtx, testWallet, "").Return([]finance.Entry(nil), errors.New("connection reset"))

	_, err := h.list(authCtx, &listInput{})
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}
