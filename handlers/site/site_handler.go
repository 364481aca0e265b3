package handlers

import (
	"mkbarber.pl/configs"
	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/models"
	"mkbarber.pl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SiteHandler renders the public pages.
type SiteHandler struct {
	catalog services.ICatalogService
}

// NewSiteHandler builds the handler with the configured backend.
func NewSiteHandler() *SiteHandler {
	return &SiteHandler{catalog: services.NewCatalogService()}
}

// Home GET / renders the single-page site: services, team, booking widget
// and contact form. The booking widget talks to /api from the browser.
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()

	servicesList, err := h.catalog.ListServices(ctx)
	if err != nil {
		configslog.Log.Error("Site - Home: services load failed", zap.Error(err))
		servicesList = []models.Service{}
	}
	barbers, err := h.catalog.ListBarbers(ctx)
	if err != nil {
		configslog.Log.Error("Site - Home: barbers load failed", zap.Error(err))
		barbers = []models.Barber{}
	}

	policy := configs.GetBookingPolicy()
	return c.Render("index", fiber.Map{
		"Title":     "MK Barber — Salon Fryzjerski",
		"Services":  servicesList,
		"Barbers":   barbers,
		"Slots":     services.BuildSlotGrid(policy),
		"OpenHour":  policy.OpenHour,
		"CloseHour": policy.CloseHour,
	}, "layouts/main")
}
