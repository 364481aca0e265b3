package routes

import (
	site_handlers "mkbarber.pl/handlers/site"

	"github.com/gofiber/fiber/v2"
)

// registerSiteRoutes defines the server-rendered public pages.
func registerSiteRoutes(app *fiber.App) {
	siteHandler := site_handlers.NewSiteHandler()

	app.Get("/", siteHandler.Home) // GET /
}
