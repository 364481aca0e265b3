package repositories

import (
	"context"
	"errors"
	"sync"

	"mkbarber.pl/configs/configsdatabase"
	"mkbarber.pl/database/seeders"
)

// Sentinel errors shared by all repository backends. Services translate
// these into their own user-facing errors.
var (
	// ErrNotFound: the addressed record does not exist.
	ErrNotFound = errors.New("rekord nie istnieje")
	// ErrSlotTaken: a confirmed appointment already occupies the
	// (barber, date, time) cell.
	ErrSlotTaken = errors.New("termin zajęty")
)

// In-memory backend, shared process-wide, used when no database is
// configured (configsdatabase.GetDB() == nil). Mirrors the original site's
// behaviour of running entirely from memory with the catalog preloaded.
var (
	memoryOnce     sync.Once
	memoryCatalog  *MemoryCatalogRepository
	memoryAppts    *MemoryAppointmentRepository
	memoryContacts *MemoryContactMessageRepository
)

func initMemoryBackend() {
	memoryOnce.Do(func() {
		memoryCatalog = NewMemoryCatalogRepository(seeders.DefaultServices(), seeders.DefaultBarbers())
		memoryAppts = NewMemoryAppointmentRepository()
		for _, appt := range seeders.SampleAppointments() {
			a := appt
			_ = memoryAppts.Create(context.Background(), &a)
		}
		memoryContacts = NewMemoryContactMessageRepository()
	})
}

// NewCatalogRepository returns the Postgres-backed catalog repository, or
// the shared in-memory one when running without a database.
func NewCatalogRepository() ICatalogRepository {
	if db := configsdatabase.GetDB(); db != nil {
		return &GormCatalogRepository{db: db}
	}
	initMemoryBackend()
	return memoryCatalog
}

// NewAppointmentRepository returns the appointment store for the configured
// backend.
func NewAppointmentRepository() IAppointmentRepository {
	if db := configsdatabase.GetDB(); db != nil {
		return &GormAppointmentRepository{db: db}
	}
	initMemoryBackend()
	return memoryAppts
}

// NewContactMessageRepository returns the contact message store for the
// configured backend.
func NewContactMessageRepository() IContactMessageRepository {
	if db := configsdatabase.GetDB(); db != nil {
		return &GormContactMessageRepository{db: db}
	}
	initMemoryBackend()
	return memoryContacts
}
