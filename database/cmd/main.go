package main

import (
	"flag"

	"lcv.link/configs"
	"lcv.link/configs/configslog"
	"lcv.link/database"

	"go.uber.org/zap"
)

// Migrasyonları sunucudan bağımsız çalıştırmak için küçük araç.
// Sunucu açılışta da migrate eder; bu komut Postgres gibi paylaşılan
// ortamlarda şemayı önceden kurmak içindir.
func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Konfigürasyon yüklenemedi", zap.Error(err))
	}
	if cfg.Storage.Driver == configs.DriverMongo {
		configslog.SLog.Info("Mongo sürücüsü şema migrasyonu gerektirmez, çıkılıyor.")
		return
	}

	db, err := database.Connect(cfg.Storage)
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}
	defer database.Close(db)

	if !*migrateFlag {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	if err := database.Initialize(db); err != nil {
		configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız", zap.Error(err))
	}
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
