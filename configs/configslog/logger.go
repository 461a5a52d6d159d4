package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapısal loglama için global zap logger.
// SLog ise printf tarzı kullanım için sugared versiyonu.
// InitLogger çağrılana kadar no-op'turlar; testler sessiz çalışır.
var (
	Log  = zap.NewNop()
	SLog = zap.NewNop().Sugar()
)

// InitLogger global loggerları başlatır. APP_ENV=development ise
// okunabilir konsol çıktısı, aksi halde JSON üretir.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa yapacak bir şey yok, süreç başlamamalı.
		panic("logger baslatilamadi: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger süreç kapanırken tamponlanmış log kayıtlarını boşaltır.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
