package views

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/domain/step"
	"dropops/internal/domain/task"
	"dropops/internal/domain/waitlist"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) ListAirdrops(ctx context.Context, filter airdrop.Filter, withSteps bool) ([]AirdropItem, error) {
	args := m.Called(ctx, filter, withSteps)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]AirdropItem), args.Error(1)
}

func (m *MockRemote) GetAirdrop(ctx context.Context, id string) (*airdrop.Airdrop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*airdrop.Airdrop), args.Error(1)
}

func (m *MockRemote) CreateAirdrop(ctx context.Context, a airdrop.Airdrop, steps []string) (*AirdropItem, error) {
	args := m.Called(ctx, a, steps)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AirdropItem), args.Error(1)
}

func (m *MockRemote) UpdateAirdrop(ctx context.Context, id string, patch airdrop.Patch) (*airdrop.Airdrop, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*airdrop.Airdrop), args.Error(1)
}

func (m *MockRemote) DeleteAirdrop(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRemote) ListSteps(ctx context.Context, airdropID string) ([]step.Step, error) {
	args := m.Called(ctx, airdropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]step.Step), args.Error(1)
}

func (m *MockRemote) AddSteps(ctx context.Context, airdropID string, titles []string) ([]step.Step, error) {
	args := m.Called(ctx, airdropID, titles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]step.Step), args.Error(1)
}

func (m *MockRemote) UpdateStep(ctx context.Context, id string, patch step.Patch) (*step.Step, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*step.Step), args.Error(1)
}

func (m *MockRemote) DeleteStep(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRemote) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]task.Task), args.Error(1)
}

func (m *MockRemote) CreateTask(ctx context.Context, t task.Task) (*task.Task, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockRemote) UpdateTask(ctx context.Context, id string, patch task.Patch) (*task.Task, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockRemote) DeleteTask(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRemote) ListFinance(ctx context.Context, airdropID string) ([]finance.Entry, error) {
	args := m.Called(ctx, airdropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Entry), args.Error(1)
}

func (m *MockRemote) CreateFinance(ctx context.Context, e finance.Entry) (*finance.Entry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Entry), args.Error(1)
}

func (m *MockRemote) DeleteFinance(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRemote) ListWaitlist(ctx context.Context) ([]waitlist.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]waitlist.Item), args.Error(1)
}

func (m *MockRemote) CreateWaitlist(ctx context.Context, it waitlist.Item) (*waitlist.Item, error) {
	args := m.Called(ctx, it)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waitlist.Item), args.Error(1)
}

func (m *MockRemote) UpdateWaitlist(ctx context.Context, id string, patch waitlist.Patch) (*waitlist.Item, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waitlist.Item), args.Error(1)
}

func (m *MockRemote) DeleteWaitlist(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func ptr[T any](v T) *T { return &v }

func newViews(remote Remote) *Views {
	return New(remote, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var errOffline = errors.New("offline")

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	newest := airdrop.Filter{OrderBy: "created_at", Desc: true}

	t.Run("remote error renders empty", func(t *testing.T) {
		remote := &MockRemote{}
		remote.On("ListAirdrops", ctx, newest, true).Return(nil, errOffline)

		d := newViews(remote).Dashboard(ctx, DashboardQuery{})
		assert.Empty(t, d.Rows)
		assert.NotNil(t, d.Rows)
	})

	t.Run("progress and value sort", func(t *testing.T) {
		remote := &MockRemote{}
		filter := newest
		filter.Status = airdrop.StatusActive
		remote.On("ListAirdrops", ctx, filter, true).Return([]AirdropItem{
			{Airdrop: airdrop.Airdrop{ID: "a", EstimatedVal: ptr("TBA")}},
			{Airdrop: airdrop.Airdrop{ID: "b", EstimatedVal: ptr("$500")}, Steps: []step.Step{
				{ID: "s1", IsCompleted: true}, {ID: "s2"}, {ID: "s3"},
			}},
			{Airdrop: airdrop.Airdrop{ID: "c", EstimatedVal: ptr("~1.2k")}},
		}, nil)

		d := newViews(remote).Dashboard(ctx, DashboardQuery{Status: airdrop.StatusActive, SortByValue: true, Desc: true})
		require.Len(t, d.Rows, 3)
		assert.Equal(t, "c", d.Rows[0].Airdrop.ID)
		assert.Equal(t, "b", d.Rows[1].Airdrop.ID)
		assert.Equal(t, "a", d.Rows[2].Airdrop.ID)
		assert.Equal(t, 1, d.Rows[1].Progress.Completed)
		assert.Equal(t, 33, d.Rows[1].Progress.Percent)
	})
}

func TestDetail_NotFoundRendersEmpty(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("GetAirdrop", ctx, "x").Return(nil, errOffline)

	d := newViews(remote).Detail(ctx, "x")
	assert.Nil(t, d.Airdrop)
	assert.Empty(t, d.Steps)
	remote.AssertNotCalled(t, "ListSteps", mock.Anything, mock.Anything)
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("GetAirdrop", ctx, "a1").Return(&airdrop.Airdrop{ID: "a1", Name: "Scroll"}, nil)
	remote.On("ListSteps", ctx, "a1").Return([]step.Step{{ID: "s1", IsCompleted: true}, {ID: "s2", IsCompleted: true}}, nil)
	remote.On("ListTasks", ctx, task.Filter{AirdropID: "a1"}).Return(nil, errOffline)

	d := newViews(remote).Detail(ctx, "a1")
	require.NotNil(t, d.Airdrop)
	assert.Equal(t, 100, d.Progress.Percent)
	assert.Empty(t, d.Tasks)
}

func TestToggleStep_Optimistic(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("ListSteps", ctx, "a1").Return([]step.Step{{ID: "s1"}, {ID: "s2", IsCompleted: true}}, nil)
	remote.On("UpdateStep", ctx, "s1", step.Patch{IsCompleted: ptr(true)}).Return(nil, errOffline)

	l, err := newViews(remote).ToggleStep(ctx, "a1", "s1")
	require.NoError(t, err)
	assert.True(t, l.Steps[0].IsCompleted)
	assert.Equal(t, 2, l.Progress.Completed)
	remote.AssertExpectations(t)
}

func TestToggleStep_Unknown(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("ListSteps", ctx, "a1").Return([]step.Step{{ID: "s1"}}, nil)

	_, err := newViews(remote).ToggleStep(ctx, "a1", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	remote.AssertNotCalled(t, "UpdateStep", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteStep_Optimistic(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("ListSteps", ctx, "a1").Return([]step.Step{{ID: "s1"}, {ID: "s2"}}, nil)
	remote.On("DeleteStep", ctx, "s1").Return(nil)

	l, err := newViews(remote).DeleteStep(ctx, "a1", "s1")
	require.NoError(t, err)
	require.Len(t, l.Steps, 1)
	assert.Equal(t, "s2", l.Steps[0].ID)
}

func TestAddSteps_BlankTitles(t *testing.T) {
	_, err := newViews(&MockRemote{}).AddSteps(context.Background(), "a1", []string{" ", ""})
	assert.ErrorIs(t, err, step.ErrInvalidInput)
}

func TestFinance(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("ListAirdrops", ctx, airdrop.Filter{OrderBy: "name"}, false).Return([]AirdropItem{
		{Airdrop: airdrop.Airdrop{ID: "b", Name: "Blast"}},
		{Airdrop: airdrop.Airdrop{ID: "z", Name: "zkSync"}},
	}, nil)
	remote.On("ListFinance", ctx, "").Return([]finance.Entry{
		{ID: "1", AirdropID: "z", CostType: finance.CostGasFee, Amount: 100},
		{ID: "2", AirdropID: "z", CostType: finance.CostClaimedReward, Amount: 150},
		{ID: "3", AirdropID: "gone", CostType: finance.CostOther, Amount: 999},
	}, nil)

	f := newViews(remote).Finance(ctx)
	require.Len(t, f.Airdrops, 2)
	assert.Equal(t, "Blast", f.Airdrops[0].Name)
	assert.Empty(t, f.Airdrops[0].Entries)
	assert.InDelta(t, 50, f.Airdrops[1].Totals.ProfitLoss, 1e-9)
	assert.InDelta(t, 100, f.Portfolio.TotalCost, 1e-9)
	assert.InDelta(t, 50, f.Portfolio.ROIPercent, 1e-9)
}

func TestFinance_EntriesErrorKeepsAirdrops(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("ListAirdrops", ctx, airdrop.Filter{OrderBy: "name"}, false).Return([]AirdropItem{
		{Airdrop: airdrop.Airdrop{ID: "b", Name: "Blast"}},
	}, nil)
	remote.On("ListFinance", ctx, "").Return(nil, errOffline)

	f := newViews(remote).Finance(ctx)
	require.Len(t, f.Airdrops, 1)
	assert.Zero(t, f.Portfolio.TotalCost)
}

func TestAddFinance_Validation(t *testing.T) {
	tests := []struct {
		name  string
		entry finance.Entry
	}{
		{"zero amount", finance.Entry{AirdropID: "a", CostType: finance.CostGasFee}},
		{"negative amount", finance.Entry{AirdropID: "a", CostType: finance.CostGasFee, Amount: -1}},
		{"no airdrop", finance.Entry{CostType: finance.CostGasFee, Amount: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &MockRemote{}
			_, err := newViews(remote).AddFinance(context.Background(), tt.entry)
			assert.ErrorIs(t, err, finance.ErrInvalidInput)
			remote.AssertNotCalled(t, "CreateFinance", mock.Anything, mock.Anything)
		})
	}
}

func TestToggleTask_StampsCompletion(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	remote := &MockRemote{}
	remote.On("ListTasks", ctx, task.Filter{DailyOnly: true}).Return([]task.Task{
		{ID: "t1", Title: "Check in", Type: task.TypeDaily},
		{ID: "t2", Title: "Swap", Type: task.TypeDaily},
	}, nil)
	remote.On("UpdateTask", ctx, "t1", task.Patch{IsCompleted: ptr(true)}).Return(&task.Task{}, nil)

	v := newViews(remote)
	v.now = func() time.Time { return now }

	tasks, err := v.ToggleTask(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, tasks.Tasks[0].IsCompleted)
	require.NotNil(t, tasks.Tasks[0].LastCompletedAt)
	assert.Equal(t, now, *tasks.Tasks[0].LastCompletedAt)
	assert.Equal(t, 1, tasks.Progress.Completed)
	assert.Equal(t, 50, tasks.Progress.Percent)
}

func TestAddTask_DefaultsType(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("CreateTask", ctx, task.Task{Title: "Bridge", Type: task.TypeOneTime}).Return(&task.Task{ID: "t1"}, nil)
	remote.On("ListTasks", ctx, task.Filter{DailyOnly: true}).Return([]task.Task{}, nil)

	_, err := newViews(remote).AddTask(ctx, task.Task{Title: "Bridge"})
	require.NoError(t, err)
	remote.AssertExpectations(t)
}

func TestWaitlist(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("ListWaitlist", ctx).Return([]waitlist.Item{
		{ID: "1", ProjectName: "Undated", ItemType: waitlist.TypeProject},
		{ID: "2", ProjectName: "Later", ItemType: waitlist.TypeNFT, Date: ptr("2026-08-01")},
		{ID: "3", ProjectName: "Sooner", ItemType: waitlist.TypeProject, Date: ptr("2026-07-01")},
	}, nil)
	remote.On("UpdateWaitlist", ctx, "3", waitlist.Patch{ItemType: ptr(waitlist.TypeNFT)}).Return(nil, errOffline)

	v := newViews(remote)
	items := v.Waitlist(ctx)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"3", "2", "1"}, []string{items[0].ID, items[1].ID, items[2].ID})

	items, err := v.ChangeWaitlistType(ctx, "3", waitlist.TypeNFT)
	require.NoError(t, err)
	assert.Equal(t, waitlist.TypeNFT, items[0].ItemType)

	_, err = v.ChangeWaitlistType(ctx, "3", "token")
	assert.ErrorIs(t, err, waitlist.ErrInvalidInput)
}

func TestFarming_SortByPoints(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("ListAirdrops", ctx, airdrop.Filter{OrderBy: "name"}, false).Return([]AirdropItem{
		{Airdrop: airdrop.Airdrop{ID: "a", Name: "A", FarmingPoints: ptr("1,200 XP")}},
		{Airdrop: airdrop.Airdrop{ID: "b", Name: "B"}},
		{Airdrop: airdrop.Airdrop{ID: "c", Name: "C", FarmingPoints: ptr("15k")}},
	}, nil)

	list := newViews(remote).Farming(ctx, true, true)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestSetFarmingPoints(t *testing.T) {
	ctx := context.Background()
	remote := &MockRemote{}
	remote.On("UpdateAirdrop", ctx, "a", airdrop.Patch{FarmingPoints: ptr("2k")}).Return(nil, errOffline)

	_, err := newViews(remote).SetFarmingPoints(ctx, "a", "2k")
	assert.ErrorIs(t, err, errOffline)
}
