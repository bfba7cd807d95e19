package packages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/washify/booking/internal/domain"
)

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) ListActive(ctx context.Context) ([]domain.ServicePackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServicePackage), args.Error(1)
}

func (m *MockPackageRepository) GetActiveByID(ctx context.Context, id string) (*domain.ServicePackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServicePackage), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetPackages(ctx context.Context) ([]domain.ServicePackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServicePackage), args.Error(1)
}

func (m *MockCache) SetPackages(ctx context.Context, packages []domain.ServicePackage) error {
	args := m.Called(ctx, packages)
	return args.Error(0)
}

var catalog = []domain.ServicePackage{
	{ID: "pkg-basic", Name: "Basic", Price: 299, DurationMinutes: 45, IsActive: true},
	{ID: "pkg-premium", Name: "Premium", Price: 599, DurationMinutes: 90, IsActive: true},
}

func TestListActive_CacheMissFillsCache(t *testing.T) {
	repo := &MockPackageRepository{}
	cache := &MockCache{}
	service := NewPackageService(repo, cache)

	cache.On("GetPackages", mock.Anything).Return(nil, nil)
	repo.On("ListActive", mock.Anything).Return(catalog, nil)
	cache.On("SetPackages", mock.Anything, catalog).Return(nil)

	got, err := service.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, catalog, got)
	cache.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestListActive_CacheHitSkipsStore(t *testing.T) {
	repo := &MockPackageRepository{}
	cache := &MockCache{}
	service := NewPackageService(repo, cache)

	cache.On("GetPackages", mock.Anything).Return(catalog, nil)

	got, err := service.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, catalog, got)
	repo.AssertNotCalled(t, "ListActive", mock.Anything)
}

func TestListActive_CacheErrorFallsThrough(t *testing.T) {
	repo := &MockPackageRepository{}
	cache := &MockCache{}
	service := NewPackageService(repo, cache)

	cache.On("GetPackages", mock.Anything).Return(nil, errors.New("redis down"))
	repo.On("ListActive", mock.Anything).Return(catalog, nil)
	cache.On("SetPackages", mock.Anything, catalog).Return(errors.New("redis down"))

	got, err := service.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestListActive_NoCache(t *testing.T) {
	repo := &MockPackageRepository{}
	service := NewPackageService(repo, nil)

	repo.On("ListActive", mock.Anything).Return(catalog, nil)

	got, err := service.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetActiveByID(t *testing.T) {
	repo := &MockPackageRepository{}
	service := NewPackageService(repo, nil)

	repo.On("GetActiveByID", mock.Anything, "pkg-basic").Return(&catalog[0], nil)
	repo.On("GetActiveByID", mock.Anything, "pkg-gone").Return(nil, domain.ErrNotFound)

	pkg, err := service.GetActiveByID(context.Background(), "pkg-basic")
	assert.NoError(t, err)
	assert.Equal(t, "Basic", pkg.Name)

	_, err = service.GetActiveByID(context.Background(), "pkg-gone")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
