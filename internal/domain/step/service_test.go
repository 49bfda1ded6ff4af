package step

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const wallet = "0x52908400098527886e0f7030069857d2e4169ee7"

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, wallet, airdropID string) ([]Step, error) {
	args := m.Called(ctx, wallet, airdropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Step), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, wallet, id string) (*Step, error) {
	args := m.Called(ctx, wallet, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Step), args.Error(1)
}

func (m *MockRepository) CreateBatch(ctx context.Context, wallet string, steps []*Step) error {
	args := m.Called(ctx, wallet, steps)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, wallet string, s *Step) error {
	args := m.Called(ctx, wallet, s)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, wallet, id string) error {
	args := m.Called(ctx, wallet, id)
	return args.Error(0)
}

func TestService_Create_DropsBlankTitles(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("CreateBatch", mock.Anything, wallet, mock.MatchedBy(func(steps []*Step) bool {
		return len(steps) == 2 && steps[0].Title == "Bridge ETH" && steps[1].Title == "Swap on DEX"
	})).Run(func(args mock.Arguments) {
		for i, s := range args.Get(2).([]*Step) {
			s.ID = []string{"s1", "s2"}[i]
		}
	}).Return(nil)

	steps, err := service.Create(context.Background(), wallet, "a1", []string{"Bridge ETH", "  ", "", " Swap on DEX "})
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "s1", steps[0].ID)
	assert.Equal(t, "a1", steps[1].AirdropID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_OnlyBlank(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	steps, err := service.Create(context.Background(), wallet, "a1", []string{" ", ""})
	require.NoError(t, err)
	assert.Empty(t, steps)
	mockRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_ForeignAirdrop(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("CreateBatch", mock.Anything, wallet, mock.Anything).Return(ErrNotFound)

	_, err := service.Create(context.Background(), wallet, "someone-elses", []string{"x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_Toggle(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, wallet, "s1").Return(&Step{ID: "s1", Title: "Bridge"}, nil)
	mockRepo.On("Update", mock.Anything, wallet, mock.MatchedBy(func(s *Step) bool {
		return s.IsCompleted && s.Title == "Bridge"
	})).Return(nil)

	done := true
	updated, err := service.Update(context.Background(), wallet, "s1", Patch{IsCompleted: &done})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_EmptyTitle(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, wallet, "s1").Return(&Step{ID: "s1", Title: "Bridge"}, nil)

	empty := "  "
	_, err := service.Update(context.Background(), wallet, "s1", Patch{Title: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProgress(t *testing.T) {
	steps := []Step{{IsCompleted: true}, {}, {}}

	p := Progress(steps)
	assert.Equal(t, 1, p.Completed)
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 33, p.Percent)

	assert.Equal(t, 0, Progress(nil).Percent)
}
