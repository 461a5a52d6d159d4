package routes

import (
	"strings"

	"lcv.link/configs"
	"lcv.link/handlers/api"
	"lcv.link/handlers/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
// Handler'lar başlangıçta açıkça kurulur ve buraya aktarılır.
func SetupRoutes(app *fiber.App, cfg *configs.Config, rsvpHandler *api.RSVPHandler, eventHandler *api.EventHandler, pageHandler *web.PageHandler) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama

	// --- Rota Grupları ---
	registerAPIRoutes(app, cfg, rsvpHandler, eventHandler)
	registerWebRoutes(app, pageHandler)

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// notFoundHandler API istekleri için JSON, diğerleri için 404 sayfası döner.
func notFoundHandler(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found."})
	}
	return c.Status(fiber.StatusNotFound).
		Render("errors/404", fiber.Map{"Title": "Page Not Found"}, "layouts/main")
}
