package api

import (
	"time"

	"lcv.link/configs/configslog"
	"lcv.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventHandler takvim daveti ucunu yönetir.
type EventHandler struct {
	service services.IEventService
}

// NewEventHandler verilen servis ile handler örneği oluşturur.
func NewEventHandler(service services.IEventService) *EventHandler {
	return &EventHandler{service: service}
}

// ICS (GET /api/event.ics) etkinlik için takvim daveti dosyası üretir.
func (h *EventHandler) ICS(c *fiber.Ctx) error {
	data, err := h.service.ICS(time.Now())
	if err != nil {
		configslog.Log.Error("ICS üretilemedi", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error."})
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="event.ics"`)
	return c.Send(data)
}
