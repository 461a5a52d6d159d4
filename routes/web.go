package routes

import (
	"lcv.link/handlers/web"

	"github.com/gofiber/fiber/v2"
)

// registerWebRoutes davet sayfasını, admin konsolunu ve statik
// dosyaları tanımlar.
func registerWebRoutes(app *fiber.App, pageHandler *web.PageHandler) {
	app.Get("/", pageHandler.Index)
	app.Get("/admin", pageHandler.Admin)

	// Statik dosyalar (istemci scriptleri ve stiller).
	app.Static("/", "./public")
}
