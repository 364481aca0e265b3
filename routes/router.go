package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes registers the global middleware and every route group.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	registerSiteRoutes(app)
	registerAPIRoutes(app)

	// Catches everything no route matched. Must stay last.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Nie znaleziono"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title": "Strona nie znaleziona",
		}, "layouts/main")
	}
}
