package packages

import (
	"context"

	"github.com/washify/booking/internal/domain"
	"github.com/washify/booking/internal/repository"
)

type PackageUseCase interface {
	ListActive(ctx context.Context) ([]domain.ServicePackage, error)
	GetActiveByID(ctx context.Context, id string) (*domain.ServicePackage, error)
}

type Cache interface {
	GetPackages(ctx context.Context) ([]domain.ServicePackage, error)
	SetPackages(ctx context.Context, packages []domain.ServicePackage) error
}

// PackageService serves the read-only catalog with a cache-aside on the
// active list. Catalog management itself lives outside this service.
type PackageService struct {
	repo  repository.PackageRepository
	cache Cache
}

func NewPackageService(repo repository.PackageRepository, cache Cache) *PackageService {
	return &PackageService{repo: repo, cache: cache}
}

func (s *PackageService) ListActive(ctx context.Context) ([]domain.ServicePackage, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetPackages(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	packages, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetPackages(ctx, packages)
	}
	return packages, nil
}

func (s *PackageService) GetActiveByID(ctx context.Context, id string) (*domain.ServicePackage, error) {
	return s.repo.GetActiveByID(ctx, id)
}

var _ PackageUseCase = (*PackageService)(nil)
