package routes

import (
	"lcv.link/configs"
	"lcv.link/handlers/api"
	"lcv.link/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// registerAPIRoutes JSON API uçlarını tanımlar.
func registerAPIRoutes(app *fiber.App, cfg *configs.Config, rsvpHandler *api.RSVPHandler, eventHandler *api.EventHandler) {
	group := app.Group("/api")

	group.Get("/health", rsvpHandler.Health)
	group.Get("/event.ics", eventHandler.ICS)

	// Public gönderim ucu; istek sınırlama politikası konfigürasyondan gelir.
	submit := group.Group("/rsvp")
	if cfg.Rate.Enabled {
		submit.Use(limiter.New(limiter.Config{
			Max:        cfg.Rate.Max,
			Expiration: cfg.Rate.Window,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).
					JSON(fiber.Map{"error": "Too many requests. Please try again later."})
			},
		}))
	}
	submit.Post("", rsvpHandler.Submit)

	// Admin uçları tek paylaşılan parola ile korunur.
	admin := group.Group("/admin", middleware.BasicAuth(cfg.AdminPassword))
	admin.Get("/rsvps", rsvpHandler.List)
	admin.Get("/rsvps.csv", rsvpHandler.ExportCSV)
}
