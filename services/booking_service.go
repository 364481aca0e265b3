package services

import (
	"context"
	"errors"
	"fmt"

	"mkbarber.pl/configs"
	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"
	"mkbarber.pl/repositories"

	"go.uber.org/zap"
)

// BookingServiceError is a user-facing booking failure.
type BookingServiceError string

func (e BookingServiceError) Error() string { return string(e) }

const (
	ErrSlotTaken             BookingServiceError = "wybrany termin jest już zajęty"
	ErrAppointmentNotFound   BookingServiceError = "wizyta nie znaleziona"
	ErrBookingFailed         BookingServiceError = "nie udało się utworzyć wizyty"
	ErrCancellationFailed    BookingServiceError = "nie udało się anulować wizyty"
	ErrAppointmentsReadError BookingServiceError = "błąd podczas pobierania wizyt"
)

// IBookingService is the booking orchestrator: it validates a request
// against the catalog and the grid, enforces slot exclusivity and owns the
// appointment lifecycle.
type IBookingService interface {
	CreateAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, id string) error
	GetAppointments(ctx context.Context) ([]models.Appointment, error)
	GetAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error)
}

// BookingService implements IBookingService. It holds no state of its own;
// every call is a computation over the store's current contents.
type BookingService struct {
	repo    repositories.IAppointmentRepository
	catalog repositories.ICatalogRepository
	policy  configs.BookingPolicy
}

// NewBookingService wires the configured backend.
func NewBookingService() IBookingService {
	return &BookingService{
		repo:    repositories.NewAppointmentRepository(),
		catalog: repositories.NewCatalogRepository(),
		policy:  configs.GetBookingPolicy(),
	}
}

// NewBookingServiceWith injects dependencies, for tests.
func NewBookingServiceWith(repo repositories.IAppointmentRepository, catalog repositories.ICatalogRepository, policy configs.BookingPolicy) IBookingService {
	return &BookingService{repo: repo, catalog: catalog, policy: policy}
}

// CreateAppointment validates the request, then hands the slot-exclusive
// insert to the store. Validation reports every violated field at once;
// unknown service/barber ids count as field violations. The status is always
// forced to confirmed, id and createdAt are generated server-side.
func (s *BookingService) CreateAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	verr := ValidateBookingRequest(req, s.policy)

	if req.ServiceID != "" {
		if _, err := s.catalog.FindServiceByID(ctx, req.ServiceID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				verr.add("serviceId", "wybrana usługa nie istnieje")
			} else {
				return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
			}
		}
	}
	if req.BarberID != "" {
		if _, err := s.catalog.FindBarberByID(ctx, req.BarberID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				verr.add("barberId", "wybrany fryzjer nie istnieje")
			} else {
				return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
			}
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	appointment := &models.Appointment{
		ServiceID: req.ServiceID,
		BarberID:  req.BarberID,
		Date:      req.Date,
		Time:      req.Time,
		FirstName: req.FirstName,
		Phone:     req.Phone,
		Email:     req.Email,
		Status:    models.AppointmentStatusConfirmed,
	}

	if err := s.repo.CreateIfSlotFree(ctx, appointment); err != nil {
		if errors.Is(err, repositories.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		if errors.Is(err, repositories.ErrNotFound) {
			// Barber disappeared between the catalog check and the insert.
			verr.add("barberId", "wybrany fryzjer nie istnieje")
			return nil, verr
		}
		configslog.Log.Error("BookingService.CreateAppointment: insert failed",
			zap.String("barber_id", req.BarberID),
			zap.String("date", req.Date),
			zap.String("time", req.Time),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}

	configslog.SLog.Infof("Utworzono wizytę %s: fryzjer %s, %s %s.",
		appointment.ID, appointment.BarberID, appointment.Date, appointment.Time)
	return appointment, nil
}

// CancelAppointment frees the slot held by a confirmed appointment.
// Cancelling a nonexistent or already-cancelled id reports not-found;
// cancelled is terminal.
func (s *BookingService) CancelAppointment(ctx context.Context, id string) error {
	cancelled, err := s.repo.Cancel(ctx, id)
	if err != nil {
		configslog.Log.Error("BookingService.CancelAppointment: store error",
			zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrCancellationFailed, err)
	}
	if !cancelled {
		return ErrAppointmentNotFound
	}
	configslog.SLog.Infof("Anulowano wizytę %s.", id)
	return nil
}

// GetAppointments lists every appointment, confirmed and cancelled.
func (s *BookingService) GetAppointments(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAppointmentsReadError, err)
	}
	return appointments, nil
}

// GetAppointmentsByDate lists confirmed appointments on a date.
func (s *BookingService) GetAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	appointments, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAppointmentsReadError, err)
	}
	return appointments, nil
}

var _ IBookingService = (*BookingService)(nil)
