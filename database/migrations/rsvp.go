package migrations

import (
	"lcv.link/configs/configslog"
	"lcv.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateRSVPTable RSVP modeli için tabloyu oluşturur/günceller.
func MigrateRSVPTable(db *gorm.DB) error {
	configslog.SLog.Info("rsvps tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.RSVP{}); err != nil {
		configslog.Log.Error("rsvps tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("rsvps tablosu başarıyla migrate edildi")
	return nil
}
