package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lcv.link/configs"
	"lcv.link/configs/configslog"
	apihandlers "lcv.link/handlers/api"
	webhandlers "lcv.link/handlers/web"
	"lcv.link/repositories"
	"lcv.link/routes"
	"lcv.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Konfigürasyon yüklenemedi", zap.Error(err))
	}
	if cfg.AdminPassword == "" {
		configslog.SLog.Warn("ADMIN_PASSWORD tanımlı değil; /api/admin uçları çalışmayacak.")
	}

	// Depolama tutamacı bir kez kurulur ve süreç boyunca paylaşılır.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	repo, err := repositories.New(ctx, cfg.Storage)
	cancel()
	if err != nil {
		configslog.Log.Fatal("Depolama katmanı kurulamadı", zap.Error(err))
	}

	rsvpService := services.NewRSVPService(repo, cfg.Limits)
	eventService := services.NewEventService(cfg.Event)

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:        engine,
		ProxyHeader:  fiber.HeaderXForwardedFor, // İstemci IP'si proxy arkasından alınır
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	routes.SetupRoutes(app, cfg,
		apihandlers.NewRSVPHandler(rsvpService),
		apihandlers.NewEventHandler(eventService),
		webhandlers.NewPageHandler(eventService),
	)

	// Sunucuyu başlat, kapanış sinyalini bekle.
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()
	configslog.SLog.Infof("Sunucu %s portunda dinliyor", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		configslog.Log.Error("Sunucu beklenmedik şekilde durdu", zap.Error(err))
	case sig := <-quit:
		configslog.SLog.Infof("%s sinyali alındı, kapanılıyor...", sig)
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
		}
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer closeCancel()
	if err := repo.Close(closeCtx); err != nil {
		configslog.Log.Error("Depolama bağlantısı kapatılamadı", zap.Error(err))
	}
	configslog.SLog.Info("Sunucu kapandı.")
}
