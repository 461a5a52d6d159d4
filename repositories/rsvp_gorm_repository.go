package repositories

import (
	"context"

	"lcv.link/configs/configslog"
	"lcv.link/database"
	"lcv.link/models"
	"lcv.link/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RSVPGormRepository IRSVPRepository arayüzünün ilişkisel (Postgres/SQLite)
// uygulamasıdır.
type RSVPGormRepository struct {
	db *gorm.DB
}

// NewRSVPGormRepository verilen GORM bağlantısı üzerinden depo örneği oluşturur.
func NewRSVPGormRepository(db *gorm.DB) *RSVPGormRepository {
	return &RSVPGormRepository{db: db}
}

// Insert kaydı yazar ve atanan kimliği döner. Kimlik depolama katmanında
// üretilir; çağıran tarafın verdiği ID yok sayılır.
func (r *RSVPGormRepository) Insert(ctx context.Context, rsvp *models.RSVP) (string, error) {
	rsvp.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(rsvp).Error; err != nil {
		configslog.Log.Error("RSVP kaydı yazılamadı", zap.Error(err))
		return "", apperr.Storage("could not save RSVP", err)
	}
	return rsvp.ID, nil
}

// List kayıtları createdAt alanına göre en yeniden eskiye döner.
func (r *RSVPGormRepository) List(ctx context.Context, limit int) ([]models.RSVP, error) {
	var rsvps []models.RSVP
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("RSVP listesi okunamadı", zap.Error(err))
		return nil, apperr.Storage("could not load RSVPs", err)
	}
	return rsvps, nil
}

// Ping altta yatan sql.DB bağlantısını yoklar.
func (r *RSVPGormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return apperr.Storage("db error", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperr.Storage("db error", err)
	}
	return nil
}

// Close bağlantıyı kapatır.
func (r *RSVPGormRepository) Close(ctx context.Context) error {
	database.Close(r.db)
	return nil
}

var _ IRSVPRepository = (*RSVPGormRepository)(nil)
