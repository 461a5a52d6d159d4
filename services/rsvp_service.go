package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"lcv.link/configs"
	"lcv.link/configs/configslog"
	"lcv.link/models"
	"lcv.link/pkg/apperr"
	"lcv.link/repositories"
)

// IRSVPService RSVP gönderim ve listeleme işlemleri için arayüz.
type IRSVPService interface {
	// Submit ham gönderimi doğrular, normalize eder ve kalıcı olarak yazar.
	Submit(ctx context.Context, req models.SubmitRequest, clientIP string) (string, error)
	// ListForAdmin kayıtları en yeniden eskiye döner. Yetki kontrolü bu
	// metodun önündeki middleware'e aittir.
	ListForAdmin(ctx context.Context) ([]models.RSVP, error)
	// ExportCSV o anki kayıtları başlık satırı + satır/kayıt olarak üretir.
	ExportCSV(ctx context.Context) ([]byte, error)
	// Health depolama katmanını yoklar.
	Health(ctx context.Context) error
}

// RSVPService IRSVPService arayüzünü uygular.
type RSVPService struct {
	repo   repositories.IRSVPRepository
	limits configs.LimitConfig
}

// NewRSVPService açıkça kurulmuş depo tutamacı ile servis örneği oluşturur.
func NewRSVPService(repo repositories.IRSVPRepository, limits configs.LimitConfig) *RSVPService {
	return &RSVPService{repo: repo, limits: limits}
}

// csvHeader dışa aktarma sütun sırası; admin konsolundaki tabloyla aynıdır.
var csvHeader = []string{
	"id", "name", "email", "phone", "attending",
	"guestCount", "meal", "allergies", "message", "createdAt", "ip",
}

// ValidateSubmission ham gönderimi doğrular ve kanonik kayda çevirir.
// Saf bir dönüşümdür, depolamaya dokunmaz.
func ValidateSubmission(req models.SubmitRequest, maxGuests int) (*models.RSVP, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("Name is required.")
	}

	gc, err := coerceGuestCount(req.GuestCount)
	if err != nil {
		return nil, apperr.Validation("Invalid guest count.")
	}
	if gc < 1 {
		return nil, apperr.Validation("Guest count must be at least 1.")
	}
	if gc > maxGuests {
		return nil, apperr.Validation(fmt.Sprintf("Guest count must be %d or fewer.", maxGuests))
	}

	return &models.RSVP{
		Name:       name,
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Attending:  strings.TrimSpace(req.Attending),
		GuestCount: gc,
		Meal:       strings.TrimSpace(req.Meal),
		Allergies:  strings.TrimSpace(req.Allergies),
		Message:    strings.TrimSpace(req.Message),
	}, nil
}

// coerceGuestCount istemciden sayı, metin ya da hiç gelmeyen guestCount
// alanını tam sayıya çevirir. Boş değer 1 kabul edilir.
func coerceGuestCount(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 1, nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, fmt.Errorf("tam sayı değil: %v", n)
		}
		return int(n), nil
	case int:
		return n, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, err
		}
		return int(i), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 1, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		return i, nil
	default:
		return 0, fmt.Errorf("beklenmeyen tip: %T", v)
	}
}

// Submit doğrulama başarısızsa depolamaya hiç dokunmadan döner; başarılı
// her çağrı tam olarak bir kalıcı yazma üretir.
func (s *RSVPService) Submit(ctx context.Context, req models.SubmitRequest, clientIP string) (string, error) {
	rsvp, err := ValidateSubmission(req, s.limits.MaxGuests)
	if err != nil {
		return "", err
	}

	rsvp.CreatedAt = time.Now().UTC()
	rsvp.IP = clientIP

	id, err := s.repo.Insert(ctx, rsvp)
	if err != nil {
		return "", err
	}

	configslog.SLog.Infof("RSVP kaydedildi: id=%s, name=%s, guests=%d", id, rsvp.Name, rsvp.GuestCount)
	return id, nil
}

// ListForAdmin depodan gelen listeyi dönüştürmeden aktarır.
func (s *RSVPService) ListForAdmin(ctx context.Context) ([]models.RSVP, error) {
	return s.repo.List(ctx, s.limits.ListLimit)
}

// ExportCSV kayıt listesini RFC 4180 uyumlu CSV'ye çevirir; alan içindeki
// çift tırnaklar ikilenerek kaçırılır.
func (s *RSVPService) ExportCSV(ctx context.Context) ([]byte, error) {
	rsvps, err := s.repo.List(ctx, s.limits.ListLimit)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, apperr.Storage("could not export CSV", err)
	}
	for _, r := range rsvps {
		row := []string{
			r.ID, r.Name, r.Email, r.Phone, r.Attending,
			strconv.Itoa(r.GuestCount), r.Meal, r.Allergies, r.Message,
			r.CreatedAt.UTC().Format(time.RFC3339), r.IP,
		}
		if err := w.Write(row); err != nil {
			return nil, apperr.Storage("could not export CSV", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperr.Storage("could not export CSV", err)
	}
	return buf.Bytes(), nil
}

// Health depolama katmanının erişilebilirliğini doğrular.
func (s *RSVPService) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

var _ IRSVPService = (*RSVPService)(nil)
