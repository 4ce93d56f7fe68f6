package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/okruta/routelog/internal/adapters/googlemaps"
	"github.com/okruta/routelog/internal/adapters/http"
	natsadapter "github.com/okruta/routelog/internal/adapters/nats"
	"github.com/okruta/routelog/internal/adapters/postgres"
	"github.com/okruta/routelog/internal/adapters/telegram"
	"github.com/okruta/routelog/internal/adapters/valkey"
	"github.com/okruta/routelog/internal/core/ports"
	"github.com/okruta/routelog/internal/core/usecases"
	"github.com/okruta/routelog/internal/pkg/config"
	"github.com/okruta/routelog/internal/pkg/extract"
	"github.com/okruta/routelog/internal/pkg/logging"
	"github.com/okruta/routelog/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("routelog-bot")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup(logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown(ctx)
		}
	}

	// Database
	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	go db.ReportPoolStats(ctx, 15*time.Second)

	// Cache
	cache, err := valkey.New(cfg.Valkey.Addr)
	if err != nil {
		slog.Warn("valkey unavailable", "error", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	// NATS
	var events ports.EventPublisher
	var natsConn http.NATSConn
	pub, err := natsadapter.NewPublisher(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats unavailable", "error", err)
	} else {
		defer pub.Close()
		events = pub
		natsConn = pub.Conn()
	}

	// Repos
	recordRepo := postgres.NewRouteRecordRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)

	// Outbound adapters
	directions := googlemaps.New(googlemaps.Config{
		APIKey:   cfg.Google.APIKey,
		BaseURL:  cfg.Google.DirectionsURL,
		Language: cfg.Google.Language,
		Region:   cfg.Google.Region,
		Timeout:  time.Duration(cfg.Google.TimeoutMs) * time.Millisecond,
	})
	messenger := telegram.NewSender(cfg.Telegram.Token, cfg.Telegram.APIBase)
	extractor := extract.New(extract.Config{
		CityTokens:   cfg.Extract.CityTokens,
		StreetTokens: cfg.Extract.StreetTokens,
		DefaultCity:  cfg.Extract.DefaultCity,
	})

	// Cache port is nil when valkey is down; services fall back to storage.
	var cachePort ports.CacheService
	if cache != nil {
		cachePort = cache
	}

	// Use cases
	settingsSvc := usecases.NewSettingsService(settingsRepo, cachePort, cfg.Google.BasePoint)
	reportSvc := usecases.NewReportService(recordRepo, cachePort, nil)
	routeSvc := usecases.NewRouteService(extractor, settingsSvc, reportSvc,
		recordRepo, directions, messenger, events)

	deps := &http.Dependencies{
		Routes:       routeSvc,
		Reports:      reportSvc,
		Settings:     settingsSvc,
		WebhookToken: cfg.Telegram.Token,
		NATS:         natsConn,
		DB:           db,
		Cache:        cache,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    1024 * 1024, // 1 MB max request body
		AppName:      "RouteLog Bot",
	})
	app.Use(recover.New())

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("bot server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
