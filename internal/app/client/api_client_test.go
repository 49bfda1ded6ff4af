package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropops/internal/app/server/api"
	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/infrastructure/storage/memory"
)

const serverWallet = "0x52908400098527886E0F7030069857D2E4169EE7"

// newServerClient запускает API поверх хранилища в памяти и подключает к нему APIClient.
func newServerClient(t *testing.T) *APIClient {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(api.New(api.FromMemory(memory.New()), api.Options{}, log))
	t.Cleanup(srv.Close)
	return NewAPIClient(srv.URL, 5*time.Second, log)
}

func TestAPIClient_AgainstServer(t *testing.T) {
	ctx := context.Background()
	c := newServerClient(t)

	require.NoError(t, c.HealthCheck(ctx))

	_, err := c.ListAirdrops(ctx, airdrop.Filter{}, false)
	assert.ErrorIs(t, err, ErrUnauthorized)

	token, err := c.SignIn(ctx, serverWallet, "", "")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	c.SetToken(token)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0x52908400098527886e0f7030069857d2e4169ee7", me.WalletAddress)

	network := "zkSync"
	created, err := c.CreateAirdrop(ctx, airdrop.Airdrop{
		Name:    "zkSync Era",
		Network: &network,
		Notes:   new(string),
	}, []string{"Bridge ETH", "Swap on SyncSwap"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, airdrop.StatusTracking, created.Status)
	assert.Nil(t, created.Notes)
	require.Len(t, created.Steps, 2)

	list, err := c.ListAirdrops(ctx, airdrop.Filter{Network: "zkSync"}, true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	require.Len(t, list[0].Steps, 2)
	titles := []string{list[0].Steps[0].Title, list[0].Steps[1].Title}
	assert.ElementsMatch(t, []string{"Bridge ETH", "Swap on SyncSwap"}, titles)

	for _, e := range []finance.Entry{
		{AirdropID: created.ID, CostType: finance.CostGasFee, Amount: 60},
		{AirdropID: created.ID, CostType: finance.CostOther, Amount: 40},
		{AirdropID: created.ID, CostType: finance.CostClaimedReward, Amount: 150},
	} {
		_, err := c.CreateFinance(ctx, e)
		require.NoError(t, err)
	}

	report, err := c.FinanceSummary(ctx)
	require.NoError(t, err)
	require.Len(t, report.Airdrops, 1)
	assert.Equal(t, created.ID, report.Airdrops[0].AirdropID)
	assert.Len(t, report.Airdrops[0].Entries, 3)
	assert.InDelta(t, 100, report.Portfolio.TotalCost, 1e-9)
	assert.InDelta(t, 150, report.Portfolio.ClaimedReward, 1e-9)
	assert.InDelta(t, 50, report.Portfolio.ProfitLoss, 1e-9)
	assert.InDelta(t, 50, report.Portfolio.ROIPercent, 1e-9)

	_, err = c.GetAirdrop(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.SignOut(ctx, token))
	_, err = c.Me(ctx)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.Status)
}
