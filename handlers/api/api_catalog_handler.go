package handlers

import (
	"errors"

	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APICatalogHandler serves the read-only catalog endpoints.
type APICatalogHandler struct {
	catalog services.ICatalogService
}

// NewAPICatalogHandler builds the handler with the configured backend.
func NewAPICatalogHandler() *APICatalogHandler {
	return &APICatalogHandler{catalog: services.NewCatalogService()}
}

// ListServices GET /api/services
func (h *APICatalogHandler) ListServices(c *fiber.Ctx) error {
	servicesList, err := h.catalog.ListServices(c.UserContext())
	if err != nil {
		configslog.Log.Error("API - ListServices error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas pobierania usług"})
	}
	return c.JSON(servicesList)
}

// GetService GET /api/services/:id
func (h *APICatalogHandler) GetService(c *fiber.Ctx) error {
	service, err := h.catalog.GetServiceByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Usługa nie znaleziona"})
		}
		configslog.Log.Error("API - GetService error", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas pobierania usługi"})
	}
	return c.JSON(service)
}

// ListBarbers GET /api/barbers
func (h *APICatalogHandler) ListBarbers(c *fiber.Ctx) error {
	barbers, err := h.catalog.ListBarbers(c.UserContext())
	if err != nil {
		configslog.Log.Error("API - ListBarbers error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas pobierania fryzjerów"})
	}
	return c.JSON(barbers)
}

// GetBarber GET /api/barbers/:id
func (h *APICatalogHandler) GetBarber(c *fiber.Ctx) error {
	barber, err := h.catalog.GetBarberByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrBarberNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Fryzjer nie znaleziony"})
		}
		configslog.Log.Error("API - GetBarber error", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas pobierania fryzjera"})
	}
	return c.JSON(barber)
}
