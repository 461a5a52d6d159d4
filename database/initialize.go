package database

import (
	"fmt"
	"os"
	"path/filepath"

	"lcv.link/configs"
	"lcv.link/configs/configslog"
	"lcv.link/database/migrations"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect seçilen ilişkisel sürücüye göre GORM bağlantısını açar.
// Bağlantının yaşam döngüsü çağırana aittir; süreç sonunda Close ile kapatılır.
func Connect(cfg configs.StorageConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case configs.DriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("DATABASE_URL tanımlı değil")
		}
		dialector = postgres.Open(cfg.PostgresDSN)
	case configs.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("sqlite dizini oluşturulamadı: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("ilişkisel olmayan sürücü: %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kurulamadı",
			zap.String("driver", string(cfg.Driver)), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu (%s)", cfg.Driver)
	return db, nil
}

// Initialize migrasyonları tek bir transaction içinde çalıştırır.
func Initialize(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Error("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return tx.Error
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if err := migrations.MigrateRSVPTable(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

// Close GORM'un altındaki sql.DB bağlantısını kapatır.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Warn("Kapatma için sql.DB alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Warn("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}
