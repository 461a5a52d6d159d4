package web

import (
	"time"

	"lcv.link/services"

	"github.com/gofiber/fiber/v2"
)

// PageHandler davet sayfası ile admin konsolunu sunar.
type PageHandler struct {
	events services.IEventService
}

// NewPageHandler verilen etkinlik servisi ile handler örneği oluşturur.
func NewPageHandler(events services.IEventService) *PageHandler {
	return &PageHandler{events: events}
}

// Index (GET /) davet sayfasını etkinlik bilgileriyle sunar.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	ev := h.events.Details()
	loc, err := time.LoadLocation(ev.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return c.Render("index", fiber.Map{
		"Title":       ev.Title,
		"Description": ev.Description,
		"Location":    ev.Location,
		"StartText":   ev.Start.In(loc).Format("Monday, January 2, 2006 at 3:04 PM"),
		"EndText":     ev.End.In(loc).Format("3:04 PM"),
	}, "layouts/main")
}

// Admin (GET /admin) admin konsol sayfasını sunar. Sayfanın kendisi
// korumasızdır; veri çeken uçlar BasicAuth arkasındadır.
func (h *PageHandler) Admin(c *fiber.Ctx) error {
	ev := h.events.Details()
	return c.Render("admin", fiber.Map{
		"Title": ev.Title + " — Admin",
	}, "layouts/main")
}
