package views

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/domain/progress"
)

func init() {
	color.NoColor = true
}

func TestRenderer_EmptyStates(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatTable)

	require.NoError(t, r.Dashboard(Dashboard{}))
	require.NoError(t, r.Finance(Finance{}))
	require.NoError(t, r.Waitlist(nil))
	require.NoError(t, r.Airdrop(nil))

	out := buf.String()
	assert.Contains(t, out, "No airdrops yet")
	assert.Contains(t, out, "No airdrops to track costs for")
	assert.Contains(t, out, "Waitlist is empty")
	assert.Contains(t, out, "Airdrop not found")
}

func TestRenderer_DashboardTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatTable)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	net := "Ethereum"
	require.NoError(t, r.Dashboard(Dashboard{Rows: []DashboardRow{{
		Airdrop: airdrop.Airdrop{
			ID: "a1", Name: "LayerZero", Network: &net, Status: airdrop.StatusActive,
			CreatedAt: now.Add(-3 * time.Hour),
		},
		Progress: progress.Summary{Completed: 1, Total: 2, Percent: 50},
	}}}))

	out := buf.String()
	assert.Contains(t, out, "LayerZero")
	assert.Contains(t, out, "Ethereum")
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "#####..... 50%")
	assert.Contains(t, out, "3 hours ago")
}

func TestRenderer_FinanceTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatTable)

	s := finance.Summarize([]finance.Ref{{ID: "z", Name: "zkSync"}}, []finance.Entry{
		{ID: "1", AirdropID: "z", CostType: finance.CostGasFee, Amount: 1200},
		{ID: "2", AirdropID: "z", CostType: finance.CostClaimedReward, Amount: 1500.5},
	})
	require.NoError(t, r.Finance(Finance{Airdrops: s, Portfolio: finance.Portfolio(s)}))

	out := buf.String()
	assert.Contains(t, out, "$1,200")
	assert.Contains(t, out, "+$300.5")
	assert.Contains(t, out, "TOTAL")
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatJSON)

	require.NoError(t, r.Tasks(Tasks{Progress: progress.Summary{Completed: 1, Total: 4, Percent: 25}}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(25), got["progress"].(map[string]any)["percent"])
}

func TestRenderer_YAML(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatYAML)

	require.NoError(t, r.Farming([]airdrop.Airdrop{{ID: "a1", Name: "Blast"}}))
	assert.Contains(t, buf.String(), "name: Blast")
}
