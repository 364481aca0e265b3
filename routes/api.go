package routes

import (
	api_handlers "mkbarber.pl/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes defines the JSON API consumed by the booking widget.
func registerAPIRoutes(app *fiber.App) {
	catalogHandler := api_handlers.NewAPICatalogHandler()
	appointmentHandler := api_handlers.NewAPIAppointmentHandler()
	contactHandler := api_handlers.NewAPIContactHandler()

	api := app.Group("/api")

	// Catalog (read-only reference data)
	api.Get("/services", catalogHandler.ListServices)
	api.Get("/services/:id", catalogHandler.GetService)
	api.Get("/barbers", catalogHandler.ListBarbers)
	api.Get("/barbers/:id", catalogHandler.GetBarber)

	// Appointments
	api.Get("/appointments", appointmentHandler.ListAppointments)
	api.Get("/appointments/date/:date", appointmentHandler.ListAppointmentsByDate)
	api.Get("/availability/:barberId/:date", appointmentHandler.GetAvailability)
	api.Post("/appointments", appointmentHandler.CreateAppointment)
	api.Delete("/appointments/:id", appointmentHandler.CancelAppointment)

	// Contact form
	api.Post("/contact", contactHandler.CreateContactMessage)
}
