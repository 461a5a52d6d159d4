package repositories

import (
	"context"

	"lcv.link/configs"
	"lcv.link/database"
	"lcv.link/models"
)

// IRSVPRepository RSVP kayıtları için depolama arayüzü. Kayıtlar yalnızca
// eklenir; güncelleme veya silme operasyonu tanımlı değildir. İlişkisel ve
// doküman tabanlı iki uygulama aynı sözleşmeyi paylaşır.
type IRSVPRepository interface {
	// Insert yeni kaydı kalıcı olarak yazar ve benzersiz kimliğini döner.
	Insert(ctx context.Context, rsvp *models.RSVP) (string, error)
	// List kayıtları en yeniden eskiye doğru, en fazla limit adet döner.
	List(ctx context.Context, limit int) ([]models.RSVP, error)
	// Ping depolama katmanının erişilebilirliğini doğrular.
	Ping(ctx context.Context) error
	// Close bağlantıyı kapatır; süreç kapanışında çağrılır.
	Close(ctx context.Context) error
}

// New konfigürasyondaki sürücüye göre depolama arkayüzünü kurar.
// Bağlantı burada bir kez açılır ve dönen tutamaç süreç boyunca paylaşılır.
func New(ctx context.Context, cfg configs.StorageConfig) (IRSVPRepository, error) {
	switch cfg.Driver {
	case configs.DriverMongo:
		repo, err := NewRSVPMongoRepository(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.Initialize(db); err != nil {
			database.Close(db)
			return nil, err
		}
		return NewRSVPGormRepository(db), nil
	}
}
