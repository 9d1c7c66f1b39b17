package archive

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jpeder/gamevault/internal/domain"
)

// Mock objects
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ArchivedReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedReview), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.ArchivedReview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedReview), args.Error(1)
}

func (m *MockRepository) Materialize(ctx context.Context, id uuid.UUID, ref domain.GenreRef) (*domain.MaterializeResult, error) {
	args := m.Called(ctx, id, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaterializeResult), args.Error(1)
}

func (m *MockRepository) Patch(ctx context.Context, id uuid.UUID, patch map[string]any) (*domain.ArchivedReview, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedReview), args.Error(1)
}

func (m *MockRepository) AggregateByRating(ctx context.Context) ([]domain.RatingBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RatingBucket), args.Error(1)
}

func (m *MockRepository) AggregateByCategory(ctx context.Context) (*domain.CategoryDashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryDashboard), args.Error(1)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) InvalidateCache() {
	m.Called()
}

func TestMaterialize_Success(t *testing.T) {
	repo := new(MockRepository)
	inv := new(MockInvalidator)
	svc := NewService(repo, inv)

	id := uuid.New()
	ref := domain.GenreRef{GenreName: "RPG"}
	want := &domain.MaterializeResult{
		Review:       &domain.Review{ID: id},
		Materialized: domain.MaterializeCreated,
	}
	repo.On("Materialize", mock.Anything, id, ref).Return(want, nil)
	inv.On("InvalidateCache").Return()

	got, err := svc.Materialize(context.Background(), id, ref)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Materialize may create taxonomy rows
	inv.AssertCalled(t, "InvalidateCache")
}

func TestMaterialize_NotFound(t *testing.T) {
	repo := new(MockRepository)
	inv := new(MockInvalidator)
	svc := NewService(repo, inv)

	id := uuid.New()
	repo.On("Materialize", mock.Anything, id, domain.GenreRef{}).Return(nil, domain.ErrArchiveNotFound)

	_, err := svc.Materialize(context.Background(), id, domain.GenreRef{})
	assert.ErrorIs(t, err, domain.ErrArchiveNotFound)
	inv.AssertNotCalled(t, "InvalidateCache")
}

func TestPatch_RejectsEmptyPatch(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockInvalidator))

	_, err := svc.Patch(context.Background(), uuid.New(), map[string]any{})
	assert.ErrorIs(t, err, domain.ErrEmptyPatch)

	_, err = svc.Patch(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyPatch)

	repo.AssertNotCalled(t, "Patch")
}

func TestPatch_Success(t *testing.T) {
	repo := new(MockRepository)
	inv := new(MockInvalidator)
	svc := NewService(repo, inv)

	id := uuid.New()
	patch := map[string]any{"rating": 7.5}
	want := &domain.ArchivedReview{
		ID:         id,
		ReviewJSON: json.RawMessage(`{"rating":7.5}`),
	}
	repo.On("Patch", mock.Anything, id, patch).Return(want, nil)
	inv.On("InvalidateCache").Return()

	got, err := svc.Patch(context.Background(), id, patch)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetAndList(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockInvalidator))

	id := uuid.New()
	arch := &domain.ArchivedReview{ID: id, ReviewJSON: json.RawMessage(`{}`)}
	repo.On("GetByID", mock.Anything, id).Return(arch, nil)
	repo.On("List", mock.Anything).Return([]domain.ArchivedReview{*arch}, nil)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, arch, got)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAggregations_PassThrough(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockInvalidator))

	buckets := []domain.RatingBucket{{Rating: 9, Count: 2, Samples: []string{"Hades"}}}
	dashboard := &domain.CategoryDashboard{
		Categories: []domain.CategoryAggregate{{CategoryID: 1, CategoryName: "Action", Count: 3, AvgRating: 8.5}},
	}
	repo.On("AggregateByRating", mock.Anything).Return(buckets, nil)
	repo.On("AggregateByCategory", mock.Anything).Return(dashboard, nil)

	gotBuckets, err := svc.AggregateByRating(context.Background())
	require.NoError(t, err)
	assert.Equal(t, buckets, gotBuckets)

	gotDashboard, err := svc.AggregateByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dashboard, gotDashboard)
}
