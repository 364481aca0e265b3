package repositories

import (
	"context"
	"errors"

	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IAppointmentRepository is the appointment store contract. Both backends
// (Postgres and in-memory) satisfy it; CreateIfSlotFree is the only write
// path the booking flow uses, and it must be atomic with respect to
// concurrent calls for the same (barber, date, time).
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	CreateIfSlotFree(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByDate(ctx context.Context, date string) ([]models.Appointment, error)
	FindByBarberAndDate(ctx context.Context, barberID, date string) ([]models.Appointment, error)
	Cancel(ctx context.Context, id string) (bool, error)
}

// GormAppointmentRepository implements IAppointmentRepository over Postgres.
type GormAppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepositoryTx wraps an open transaction, for callers that
// compose several repository calls atomically.
func NewAppointmentRepositoryTx(tx *gorm.DB) IAppointmentRepository {
	return &GormAppointmentRepository{db: tx}
}

// Create inserts without checking slot exclusivity. Seeder/reporting path;
// bookings go through CreateIfSlotFree.
func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil {
		return errors.New("brak danych wizyty")
	}
	return r.db.WithContext(ctx).Create(appointment).Error
}

// CreateIfSlotFree inserts the appointment only when no confirmed
// appointment holds the same (barber, date, time). The barber row is locked
// FOR UPDATE so concurrent bookings for one barber serialize; the partial
// unique index on confirmed slots backstops the check and is mapped to
// ErrSlotTaken as well.
func (r *GormAppointmentRepository) CreateIfSlotFree(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil {
		return errors.New("brak danych wizyty")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var barber models.Barber
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", appointment.BarberID).First(&barber).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var taken int64
		err = tx.Model(&models.Appointment{}).
			Where("barber_id = ? AND date = ? AND time = ? AND status = ?",
				appointment.BarberID, appointment.Date, appointment.Time,
				models.AppointmentStatusConfirmed).
			Count(&taken).Error
		if err != nil {
			return err
		}
		if taken > 0 {
			return ErrSlotTaken
		}

		if err := tx.Create(appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			configslog.Log.Error("AppointmentRepository.CreateIfSlotFree: insert failed",
				zap.String("barber_id", appointment.BarberID),
				zap.String("date", appointment.Date),
				zap.String("time", appointment.Time),
				zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *GormAppointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var appointment models.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: DB error", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

func (r *GormAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).Order("date ASC, time ASC").Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// FindByDate returns confirmed appointments on the given date.
func (r *GormAppointmentRepository) FindByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("date = ? AND status = ?", date, models.AppointmentStatusConfirmed).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindByDate: DB error", zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// FindByBarberAndDate returns confirmed appointments for one barber on one
// date, time-ascending. This is the availability engine's read path and is
// served by the (barber_id, date, status) index.
func (r *GormAppointmentRepository) FindByBarberAndDate(ctx context.Context, barberID, date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ? AND status = ?", barberID, date, models.AppointmentStatusConfirmed).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindByBarberAndDate: DB error",
			zap.String("barber_id", barberID), zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// Cancel flips a confirmed appointment to cancelled. Returns false for ids
// that do not exist or are already cancelled; cancelled is terminal.
func (r *GormAppointmentRepository) Cancel(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	result := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, models.AppointmentStatusConfirmed).
		Update("status", models.AppointmentStatusCancelled)
	if result.Error != nil {
		configslog.Log.Error("AppointmentRepository.Cancel: DB error", zap.String("id", id), zap.Error(result.Error))
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

var _ IAppointmentRepository = (*GormAppointmentRepository)(nil)
