package api

import (
	"lcv.link/configs/configslog"
	"lcv.link/models"
	"lcv.link/pkg/apperr"
	"lcv.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler public gönderim ve admin listeleme uçlarını yönetir.
type RSVPHandler struct {
	service services.IRSVPService
}

// NewRSVPHandler verilen servis ile handler örneği oluşturur.
func NewRSVPHandler(service services.IRSVPService) *RSVPHandler {
	return &RSVPHandler{service: service}
}

// Health (GET /api/health) depolama katmanını yoklar.
func (h *RSVPHandler) Health(c *fiber.Ctx) error {
	if err := h.service.Health(c.UserContext()); err != nil {
		configslog.Log.Error("Sağlık kontrolü başarısız", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"ok": false, "error": apperr.ClientMessage(err)})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Submit (POST /api/rsvp) formdan gelen gönderimi işler.
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	var req models.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("RSVP gövdesi çözümlenemedi", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body."})
	}

	id, err := h.service.Submit(c.UserContext(), req, c.IP())
	if err != nil {
		if apperr.IsKind(err, apperr.KindStorage) {
			configslog.Log.Error("RSVP Submit hatası", zap.Error(err))
		}
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": apperr.ClientMessage(err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": id})
}

// List (GET /api/admin/rsvps) kayıtları en yeniden eskiye döner.
// Yetki kontrolü rota üzerindeki BasicAuth middleware'indedir.
func (h *RSVPHandler) List(c *fiber.Ctx) error {
	rsvps, err := h.service.ListForAdmin(c.UserContext())
	if err != nil {
		configslog.Log.Error("RSVP List hatası", zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": apperr.ClientMessage(err)})
	}
	if rsvps == nil {
		rsvps = []models.RSVP{} // JSON'da null yerine boş dizi
	}
	return c.JSON(fiber.Map{"ok": true, "rsvps": rsvps})
}

// ExportCSV (GET /api/admin/rsvps.csv) kayıtları CSV dosyası olarak indirir.
func (h *RSVPHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.service.ExportCSV(c.UserContext())
	if err != nil {
		configslog.Log.Error("RSVP ExportCSV hatası", zap.Error(err))
		return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": apperr.ClientMessage(err)})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="rsvps.csv"`)
	return c.Send(data)
}
