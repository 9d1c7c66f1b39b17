package wip

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jpeder/gamevault/internal/domain"
)

// Mock objects
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, wip *domain.WipReview) error {
	args := m.Called(ctx, wip)
	if args.Error(0) == nil {
		wip.ID = 1
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*domain.WipReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WipReview), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.WipReview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WipReview), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, wip *domain.WipReview) error {
	args := m.Called(ctx, wip)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	entry, err := svc.Create(context.Background(), domain.WipReview{GameName: "Tunic", Remarks: "isometric fox game"})
	require.NoError(t, err)
	assert.Equal(t, 1, entry.ID)
	assert.Equal(t, "Tunic", entry.GameName)
}

func TestCreate_RequiresGameName(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), domain.WipReview{Remarks: "no name yet"})
	assert.ErrorIs(t, err, domain.ErrGameNameRequired)
	repo.AssertNotCalled(t, "Create")
}

func TestUpdate_SetsID(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Update", mock.Anything, mock.MatchedBy(func(w *domain.WipReview) bool {
		return w.ID == 5 && w.GameName == "Tunic"
	})).Return(nil)

	entry, err := svc.Update(context.Background(), 5, domain.WipReview{GameName: "Tunic"})
	require.NoError(t, err)
	assert.Equal(t, 5, entry.ID)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Update", mock.Anything, mock.Anything).Return(domain.ErrWipNotFound)

	_, err := svc.Update(context.Background(), 99, domain.WipReview{GameName: "Tunic"})
	assert.ErrorIs(t, err, domain.ErrWipNotFound)
}

func TestGetListDelete(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	entry := &domain.WipReview{ID: 2, GameName: "Hades"}
	repo.On("GetByID", mock.Anything, 2).Return(entry, nil)
	repo.On("List", mock.Anything).Return([]domain.WipReview{*entry}, nil)
	repo.On("Delete", mock.Anything, 2).Return(nil)

	got, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, svc.Delete(context.Background(), 2))
}
