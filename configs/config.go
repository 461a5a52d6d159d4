package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// StorageDriver hangi kalıcı depolama arkayüzünün kullanılacağını belirtir.
type StorageDriver string

const (
	DriverPostgres StorageDriver = "postgres"
	DriverSQLite   StorageDriver = "sqlite"
	DriverMongo    StorageDriver = "mongo"
)

// Config uygulamanın tüm ayarlarını tutar. Başlangıçta bir kez doldurulur
// ve ihtiyacı olan bileşenlere açıkça aktarılır; global erişimci yoktur.
type Config struct {
	Port          string
	AdminPassword string

	Storage StorageConfig
	Limits  LimitConfig
	Rate    RateLimitConfig
	Event   EventConfig
}

// StorageConfig depolama arkayüzü seçimini ve bağlantı bilgilerini tutar.
type StorageConfig struct {
	Driver      StorageDriver
	PostgresDSN string // DATABASE_URL
	SQLitePath  string // SQLITE_PATH
	MongoURI    string // MONGODB_URI
	MongoDB     string // MONGODB_DB
}

// LimitConfig doğrulama ve listeleme sınırlarını tutar.
type LimitConfig struct {
	MaxGuests int // Bir kayıtta kabul edilen en yüksek kişi sayısı
	ListLimit int // Admin listesinin üst sınırı
}

// RateLimitConfig public gönderim ucu için istek sınırlama politikası.
type RateLimitConfig struct {
	Enabled bool
	Max     int
	Window  time.Duration
}

// EventConfig takvim daveti (ICS) ve sayfa başlıkları için kullanılan
// sabit etkinlik bilgileri. Sunucu verisinden değil, konfigürasyondan gelir.
type EventConfig struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Timezone    string
}

// Load .env dosyasını (varsa) okur ve ortam değişkenlerinden Config üretir.
func Load() (*Config, error) {
	// .env opsiyonel; yoksa sessizce devam edilir.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Storage: StorageConfig{
			Driver:      StorageDriver(getEnv("STORAGE_DRIVER", string(DriverSQLite))),
			PostgresDSN: os.Getenv("DATABASE_URL"),
			SQLitePath:  getEnv("SQLITE_PATH", "data/rsvps.db"),
			MongoURI:    os.Getenv("MONGODB_URI"),
			MongoDB:     getEnv("MONGODB_DB", "anniversary"),
		},
		Limits: LimitConfig{
			MaxGuests: getEnvInt("MAX_GUESTS", 50),
			ListLimit: getEnvInt("LIST_LIMIT", 5000),
		},
		Rate: RateLimitConfig{
			Enabled: getEnvBool("RATE_LIMIT_ENABLED", true),
			Max:     getEnvInt("RATE_LIMIT_MAX", 20),
			Window:  time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
	}

	switch cfg.Storage.Driver {
	case DriverPostgres, DriverSQLite, DriverMongo:
	default:
		return nil, fmt.Errorf("gecersiz STORAGE_DRIVER: %q", cfg.Storage.Driver)
	}

	event, err := loadEventConfig()
	if err != nil {
		return nil, err
	}
	cfg.Event = event

	return cfg, nil
}

// loadEventConfig etkinlik bloğunu okur. Tarihler RFC3339 bekler;
// verilmezse örnek etkinlik (27 Aralık 2025, Toronto) kullanılır.
func loadEventConfig() (EventConfig, error) {
	tzName := getEnv("EVENT_TIMEZONE", "America/Toronto")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return EventConfig{}, fmt.Errorf("EVENT_TIMEZONE cozumlenemedi (%s): %w", tzName, err)
	}

	start := time.Date(2025, time.December, 27, 18, 0, 0, 0, loc)
	end := time.Date(2025, time.December, 28, 1, 0, 0, 0, loc)

	if raw := os.Getenv("EVENT_START"); raw != "" {
		start, err = time.ParseInLocation(time.RFC3339, raw, loc)
		if err != nil {
			return EventConfig{}, fmt.Errorf("EVENT_START cozumlenemedi: %w", err)
		}
	}
	if raw := os.Getenv("EVENT_END"); raw != "" {
		end, err = time.ParseInLocation(time.RFC3339, raw, loc)
		if err != nil {
			return EventConfig{}, fmt.Errorf("EVENT_END cozumlenemedi: %w", err)
		}
	}
	if !end.After(start) {
		return EventConfig{}, fmt.Errorf("EVENT_END, EVENT_START degerinden sonra olmali")
	}

	return EventConfig{
		Title:       getEnv("EVENT_TITLE", "Anshu & Himanshu Anniversary Party"),
		Description: getEnv("EVENT_DESCRIPTION", "We can't wait to celebrate with you! Please RSVP on the invitation website."),
		Location:    getEnv("EVENT_LOCATION", "Apollo Convention Centre, 6591 Innovator Drive, Mississauga"),
		Start:       start,
		End:         end,
		Timezone:    tzName,
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
