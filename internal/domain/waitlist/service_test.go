package waitlist

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

func (m *MockRepository) List(ctx context.Context, wallet string) ([]Item, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, wallet, id string) (*Item, error) {
	args := m.Called(ctx, wallet, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, it *Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *MockRepository) Update(ctx context.Context, it *Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, wallet, id string) error {
	return m.Called(ctx, wallet, id).Error(0)
}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
		check   func(t *testing.T, it *Item)
	}{
		{
			name: "defaults to project",
			item: Item{ProjectName: " Monad "},
			check: func(t *testing.T, it *Item) {
				assert.Equal(t, TypeProject, it.ItemType)
				assert.Equal(t, "Monad", it.ProjectName)
			},
		},
		{
			name: "blank date is cleared",
			item: Item{ProjectName: "Pudgy", ItemType: TypeNFT, Date: strPtr(" ")},
			check: func(t *testing.T, it *Item) {
				assert.Nil(t, it.Date)
			},
		},
		{name: "missing name", item: Item{}, wantErr: true},
		{name: "bad date", item: Item{ProjectName: "x", Date: strPtr("soon")}, wantErr: true},
		{name: "bad type", item: Item{ProjectName: "x", ItemType: "token"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())
			mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

			it := tt.item
			got, err := service.Create(context.Background(), wallet, &it)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, wallet, got.WalletAddress)
			tt.check(t, got)
		})
	}
}

func TestService_Update_ChangeType(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, wallet, "w1").Return(&Item{ID: "w1", ProjectName: "Mint", ItemType: TypeProject}, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(it *Item) bool { return it.ItemType == TypeNFT })).Return(nil)

	nft := TypeNFT
	updated, err := service.Update(context.Background(), wallet, "w1", Patch{ItemType: &nft})
	require.NoError(t, err)
	assert.Equal(t, TypeNFT, updated.ItemType)
	mockRepo.AssertExpectations(t)
}

func TestSort(t *testing.T) {
	items := []Item{
		{ID: "undated"},
		{ID: "march", Date: strPtr("2025-03-01")},
		{ID: "jan", Date: strPtr("2025-01-15")},
	}

	Sort(items)
	assert.Equal(t, "jan", items[0].ID)
	assert.Equal(t, "march", items[1].ID)
	assert.Equal(t, "undated", items[2].ID)
}
