package handlers

import (
	"errors"

	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIAppointmentHandler serves the booking endpoints: availability,
// creation, cancellation and reporting reads.
type APIAppointmentHandler struct {
	booking      services.IBookingService
	availability services.IAvailabilityService
	catalog      services.ICatalogService
}

// NewAPIAppointmentHandler builds the handler with the configured backend.
func NewAPIAppointmentHandler() *APIAppointmentHandler {
	return &APIAppointmentHandler{
		booking:      services.NewBookingService(),
		availability: services.NewAvailabilityService(),
		catalog:      services.NewCatalogService(),
	}
}

// ListAppointments GET /api/appointments
func (h *APIAppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	appointments, err := h.booking.GetAppointments(c.UserContext())
	if err != nil {
		configslog.Log.Error("API - ListAppointments error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas pobierania wizyt"})
	}
	return c.JSON(appointments)
}

// ListAppointmentsByDate GET /api/appointments/date/:date
func (h *APIAppointmentHandler) ListAppointmentsByDate(c *fiber.Ctx) error {
	appointments, err := h.booking.GetAppointmentsByDate(c.UserContext(), c.Params("date"))
	if err != nil {
		configslog.Log.Error("API - ListAppointmentsByDate error", zap.String("date", c.Params("date")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas pobierania wizyt"})
	}
	return c.JSON(appointments)
}

// GetAvailability GET /api/availability/:barberId/:date
// The engine itself is identity-agnostic, so the barber is validated here:
// a grid for a nonexistent barber would be meaningless to render.
func (h *APIAppointmentHandler) GetAvailability(c *fiber.Ctx) error {
	barberID := c.Params("barberId")
	date := c.Params("date")

	if _, err := h.catalog.GetBarberByID(c.UserContext(), barberID); err != nil {
		if errors.Is(err, services.ErrBarberNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Fryzjer nie znaleziony"})
		}
		configslog.Log.Error("API - GetAvailability barber lookup error", zap.String("barber_id", barberID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas sprawdzania dostępności"})
	}

	slots, err := h.availability.GetDaySchedule(c.UserContext(), barberID, date)
	if err != nil {
		configslog.Log.Error("API - GetAvailability error",
			zap.String("barber_id", barberID), zap.String("date", date), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas sprawdzania dostępności"})
	}
	return c.JSON(slots)
}

// CreateAppointment POST /api/appointments
func (h *APIAppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	var req services.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nieprawidłowe dane"})
	}

	appointment, err := h.booking.CreateAppointment(c.UserContext(), req)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Nieprawidłowe dane",
				"errors":  verr.Fields,
			})
		case errors.Is(err, services.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Wybrany termin jest już zajęty"})
		default:
			configslog.Log.Error("API - CreateAppointment error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas tworzenia wizyty"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// CancelAppointment DELETE /api/appointments/:id
func (h *APIAppointmentHandler) CancelAppointment(c *fiber.Ctx) error {
	err := h.booking.CancelAppointment(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Wizyta nie znaleziona"})
		}
		configslog.Log.Error("API - CancelAppointment error", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas anulowania wizyty"})
	}
	return c.JSON(fiber.Map{"message": "Wizyta została anulowana"})
}
