package services

import (
	"context"
	"errors"

	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"
	"mkbarber.pl/repositories"

	"go.uber.org/zap"
)

// CatalogServiceError is a user-facing catalog failure.
type CatalogServiceError string

func (e CatalogServiceError) Error() string { return string(e) }

const (
	ErrServiceNotFound CatalogServiceError = "usługa nie znaleziona"
	ErrBarberNotFound  CatalogServiceError = "fryzjer nie znaleziony"
)

// ICatalogService exposes the read-only reference data.
type ICatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	ListBarbers(ctx context.Context) ([]models.Barber, error)
	GetBarberByID(ctx context.Context, id string) (*models.Barber, error)
}

// CatalogService implements ICatalogService.
type CatalogService struct {
	repo repositories.ICatalogRepository
}

// NewCatalogService wires the configured backend.
func NewCatalogService() ICatalogService {
	return &CatalogService{repo: repositories.NewCatalogRepository()}
}

// NewCatalogServiceWith injects the repository, for tests.
func NewCatalogServiceWith(repo repositories.ICatalogRepository) ICatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.repo.FindAllServices(ctx)
	if err != nil {
		configslog.Log.Error("CatalogService.ListServices failed", zap.Error(err))
		return nil, err
	}
	return services, nil
}

func (s *CatalogService) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.repo.FindServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	barbers, err := s.repo.FindAllBarbers(ctx)
	if err != nil {
		configslog.Log.Error("CatalogService.ListBarbers failed", zap.Error(err))
		return nil, err
	}
	return barbers, nil
}

func (s *CatalogService) GetBarberByID(ctx context.Context, id string) (*models.Barber, error) {
	barber, err := s.repo.FindBarberByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBarberNotFound
		}
		return nil, err
	}
	return barber, nil
}

var _ ICatalogService = (*CatalogService)(nil)
