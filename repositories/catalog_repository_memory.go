package repositories

import (
	"context"
	"sync"

	"mkbarber.pl/models"
)

// MemoryCatalogRepository keeps the reference data in-process. The catalog
// is fixed at construction, so reads only need the lock to stay safe against
// future mutation paths.
type MemoryCatalogRepository struct {
	mu         sync.RWMutex
	services   map[string]models.Service
	barbers    map[string]models.Barber
	serviceIDs []string
	barberIDs  []string
}

// NewMemoryCatalogRepository builds a catalog from the given slices,
// preserving their order for listings.
func NewMemoryCatalogRepository(services []models.Service, barbers []models.Barber) *MemoryCatalogRepository {
	repo := &MemoryCatalogRepository{
		services: make(map[string]models.Service, len(services)),
		barbers:  make(map[string]models.Barber, len(barbers)),
	}
	for _, svc := range services {
		repo.services[svc.ID] = svc
		repo.serviceIDs = append(repo.serviceIDs, svc.ID)
	}
	for _, barber := range barbers {
		repo.barbers[barber.ID] = barber
		repo.barberIDs = append(repo.barberIDs, barber.ID)
	}
	return repo
}

func (r *MemoryCatalogRepository) FindAllServices(ctx context.Context) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]models.Service, 0, len(r.serviceIDs))
	for _, id := range r.serviceIDs {
		res = append(res, r.services[id])
	}
	return res, nil
}

func (r *MemoryCatalogRepository) FindServiceByID(ctx context.Context, id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	svc, ok := r.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &svc, nil
}

func (r *MemoryCatalogRepository) FindAllBarbers(ctx context.Context) ([]models.Barber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]models.Barber, 0, len(r.barberIDs))
	for _, id := range r.barberIDs {
		res = append(res, r.barbers[id])
	}
	return res, nil
}

func (r *MemoryCatalogRepository) FindBarberByID(ctx context.Context, id string) (*models.Barber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	barber, ok := r.barbers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &barber, nil
}

var _ ICatalogRepository = (*MemoryCatalogRepository)(nil)
