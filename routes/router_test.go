package routes

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lcv.link/configs"
	"lcv.link/handlers/api"
	"lcv.link/handlers/web"
	"lcv.link/models"
	"lcv.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const testSecret = "s3cret"

// memRepo uçtan uca testler için bellek içi depo.
type memRepo struct {
	records []models.RSVP
}

func (m *memRepo) Insert(_ context.Context, rsvp *models.RSVP) (string, error) {
	rsvp.ID = uuid.NewString()
	m.records = append(m.records, *rsvp)
	return rsvp.ID, nil
}

func (m *memRepo) List(_ context.Context, limit int) ([]models.RSVP, error) {
	out := make([]models.RSVP, 0, len(m.records))
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func (m *memRepo) Ping(_ context.Context) error  { return nil }
func (m *memRepo) Close(_ context.Context) error { return nil }

func newTestServer() (*fiber.App, *memRepo) {
	cfg := &configs.Config{
		Port:          "0",
		AdminPassword: testSecret,
		Limits:        configs.LimitConfig{MaxGuests: 50, ListLimit: 5000},
		Rate:          configs.RateLimitConfig{Enabled: false},
		Event: configs.EventConfig{
			Title:    "Test Party",
			Location: "Somewhere",
			Start:    time.Date(2025, time.December, 27, 23, 0, 0, 0, time.UTC),
			End:      time.Date(2025, time.December, 28, 6, 0, 0, 0, time.UTC),
			Timezone: "UTC",
		},
	}

	repo := &memRepo{}
	rsvpService := services.NewRSVPService(repo, cfg.Limits)
	eventService := services.NewEventService(cfg.Event)

	app := fiber.New()
	SetupRoutes(app, cfg,
		api.NewRSVPHandler(rsvpService),
		api.NewEventHandler(eventService),
		web.NewPageHandler(eventService),
	)
	return app, repo
}

func adminAuth() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:"+testSecret))
}

func decodeJSON(t *testing.T, r io.Reader, v any) {
	t.Helper()
	if err := json.NewDecoder(r).Decode(v); err != nil {
		t.Fatalf("JSON çözümlenemedi: %v", err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestServer()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body struct {
		OK bool `json:"ok"`
	}
	decodeJSON(t, resp.Body, &body)
	if !body.OK {
		t.Error("ok=true bekleniyordu")
	}
}

func TestSubmitThenAdminListScenario(t *testing.T) {
	app, _ := newTestServer()

	// Gönderim
	req := httptest.NewRequest("POST", "/api/rsvp",
		strings.NewReader(`{"name":"Jane Doe","guestCount":2}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, beklenen 201", resp.StatusCode)
	}
	var created struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	decodeJSON(t, resp.Body, &created)
	if !created.OK || created.ID == "" {
		t.Fatalf("beklenmeyen yanıt: %+v", created)
	}

	// Admin listesi
	listReq := httptest.NewRequest("GET", "/api/admin/rsvps", nil)
	listReq.Header.Set(fiber.HeaderAuthorization, adminAuth())

	listResp, err := app.Test(listReq)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	defer listResp.Body.Close()

	if listResp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, beklenen 200", listResp.StatusCode)
	}
	var listBody struct {
		OK    bool          `json:"ok"`
		RSVPs []models.RSVP `json:"rsvps"`
	}
	decodeJSON(t, listResp.Body, &listBody)
	if len(listBody.RSVPs) != 1 {
		t.Fatalf("liste uzunluğu = %d, beklenen 1", len(listBody.RSVPs))
	}
	first := listBody.RSVPs[0]
	if first.Name != "Jane Doe" || first.GuestCount != 2 {
		t.Errorf("ilk kayıt = %+v", first)
	}
	if first.ID != created.ID {
		t.Errorf("id alanı kararlı değil: %s != %s", first.ID, created.ID)
	}
}

func TestSubmitEmptyNameLeavesStorageUnchanged(t *testing.T) {
	app, repo := newTestServer()

	req := httptest.NewRequest("POST", "/api/rsvp",
		strings.NewReader(`{"name":"","guestCount":1}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, beklenen 400", resp.StatusCode)
	}
	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp.Body, &body)
	if body.Error == "" {
		t.Error("hata mesajı bekleniyordu")
	}
	if len(repo.records) != 0 {
		t.Errorf("kayıt sayısı değişmemeliydi, = %d", len(repo.records))
	}
}

func TestAdminListRequiresAuth(t *testing.T) {
	app, _ := newTestServer()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/rsvps", nil))
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, beklenen 401", resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderWWWAuthenticate); !strings.HasPrefix(got, "Basic") {
		t.Errorf("WWW-Authenticate başlığı eksik: %q", got)
	}
}

func TestAdminCSVExport(t *testing.T) {
	app, _ := newTestServer()

	req := httptest.NewRequest("POST", "/api/rsvp",
		strings.NewReader(`{"name":"Jane","guestCount":1}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}

	csvReq := httptest.NewRequest("GET", "/api/admin/rsvps.csv", nil)
	csvReq.Header.Set(fiber.HeaderAuthorization, adminAuth())

	resp, err := app.Test(csvReq)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, beklenen 200", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
	data, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(data), "id,name,email,phone,attending,guestCount,") {
		t.Errorf("CSV başlığı beklenmedik: %s", data)
	}
}

func TestEventICSEndpoint(t *testing.T) {
	app, _ := newTestServer()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/event.ics", nil))
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, beklenen 200", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("content type = %q", ct)
	}
	data, _ := io.ReadAll(resp.Body)
	if strings.Count(string(data), "BEGIN:VEVENT") != 1 {
		t.Errorf("tek VEVENT bekleniyordu:\n%s", data)
	}
}

func TestUnknownAPIRouteReturnsJSON404(t *testing.T) {
	app, _ := newTestServer()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/nope", nil))
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, beklenen 404", resp.StatusCode)
	}
	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp.Body, &body)
	if body.Error == "" {
		t.Error("JSON hata gövdesi bekleniyordu")
	}
}
