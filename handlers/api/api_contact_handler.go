package handlers

import (
	"errors"

	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIContactHandler serves the contact form endpoint.
type APIContactHandler struct {
	contact services.IContactService
}

// NewAPIContactHandler builds the handler with the configured backend.
func NewAPIContactHandler() *APIContactHandler {
	return &APIContactHandler{contact: services.NewContactService()}
}

// CreateContactMessage POST /api/contact
func (h *APIContactHandler) CreateContactMessage(c *fiber.Ctx) error {
	var req services.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nieprawidłowe dane"})
	}

	message, err := h.contact.CreateContactMessage(c.UserContext(), req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Nieprawidłowe dane",
				"errors":  verr.Fields,
			})
		}
		configslog.Log.Error("API - CreateContactMessage error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Błąd podczas wysyłania wiadomości"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Wiadomość została wysłana pomyślnie",
		"data":    message,
	})
}
