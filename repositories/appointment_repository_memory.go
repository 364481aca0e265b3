package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"mkbarber.pl/models"

	"github.com/google/uuid"
)

// MemoryAppointmentRepository keeps appointments in-process. The single
// mutex makes the check-then-insert in CreateIfSlotFree atomic, which is all
// the exclusivity guarantee needs in this backend. Identity checks stay in
// the booking service, same as with the Postgres backend.
type MemoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[string]models.Appointment
	order        []string
}

// NewMemoryAppointmentRepository initializes an empty store.
func NewMemoryAppointmentRepository() *MemoryAppointmentRepository {
	return &MemoryAppointmentRepository{
		appointments: make(map[string]models.Appointment),
	}
}

func (r *MemoryAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertLocked(appointment)
	return nil
}

func (r *MemoryAppointmentRepository) CreateIfSlotFree(ctx context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.appointments {
		if existing.BarberID == appointment.BarberID &&
			existing.Date == appointment.Date &&
			existing.Time == appointment.Time &&
			existing.IsConfirmed() {
			return ErrSlotTaken
		}
	}
	r.insertLocked(appointment)
	return nil
}

func (r *MemoryAppointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	appt, ok := r.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &appt, nil
}

func (r *MemoryAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]models.Appointment, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, r.appointments[id])
	}
	return res, nil
}

func (r *MemoryAppointmentRepository) FindByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.filter(func(a models.Appointment) bool {
		return a.Date == date && a.IsConfirmed()
	}), nil
}

func (r *MemoryAppointmentRepository) FindByBarberAndDate(ctx context.Context, barberID, date string) ([]models.Appointment, error) {
	return r.filter(func(a models.Appointment) bool {
		return a.BarberID == barberID && a.Date == date && a.IsConfirmed()
	}), nil
}

func (r *MemoryAppointmentRepository) Cancel(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.appointments[id]
	if !ok || !appt.IsConfirmed() {
		return false, nil
	}
	appt.Status = models.AppointmentStatusCancelled
	r.appointments[id] = appt
	return true, nil
}

func (r *MemoryAppointmentRepository) insertLocked(appointment *models.Appointment) {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}
	if _, exists := r.appointments[appointment.ID]; !exists {
		r.order = append(r.order, appointment.ID)
	}
	r.appointments[appointment.ID] = *appointment
}

func (r *MemoryAppointmentRepository) filter(keep func(models.Appointment) bool) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []models.Appointment
	for _, id := range r.order {
		if a := r.appointments[id]; keep(a) {
			res = append(res, a)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Date != res[j].Date {
			return res[i].Date < res[j].Date
		}
		return res[i].Time < res[j].Time
	})
	return res
}

var _ IAppointmentRepository = (*MemoryAppointmentRepository)(nil)
