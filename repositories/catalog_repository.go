package repositories

import (
	"context"
	"errors"

	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICatalogRepository is the read-only surface over the reference data
// (services and barbers). Listings come back in insertion order.
type ICatalogRepository interface {
	FindAllServices(ctx context.Context) ([]models.Service, error)
	FindServiceByID(ctx context.Context, id string) (*models.Service, error)
	FindAllBarbers(ctx context.Context) ([]models.Barber, error)
	FindBarberByID(ctx context.Context, id string) (*models.Barber, error)
}

// GormCatalogRepository implements ICatalogRepository over Postgres.
type GormCatalogRepository struct {
	db *gorm.DB
}

func (r *GormCatalogRepository) FindAllServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&services).Error
	if err != nil {
		configslog.Log.Error("CatalogRepository.FindAllServices: DB error", zap.Error(err))
		return nil, err
	}
	return services, nil
}

func (r *GormCatalogRepository) FindServiceByID(ctx context.Context, id string) (*models.Service, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var service models.Service
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CatalogRepository.FindServiceByID: DB error", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &service, nil
}

func (r *GormCatalogRepository) FindAllBarbers(ctx context.Context) ([]models.Barber, error) {
	var barbers []models.Barber
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&barbers).Error
	if err != nil {
		configslog.Log.Error("CatalogRepository.FindAllBarbers: DB error", zap.Error(err))
		return nil, err
	}
	return barbers, nil
}

func (r *GormCatalogRepository) FindBarberByID(ctx context.Context, id string) (*models.Barber, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var barber models.Barber
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&barber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CatalogRepository.FindBarberByID: DB error", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &barber, nil
}

var _ ICatalogRepository = (*GormCatalogRepository)(nil)
