package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/ramanDeveloper23/visage-site-api/internal/api/router"
	appconfig "github.com/ramanDeveloper23/visage-site-api/internal/config"
	"github.com/ramanDeveloper23/visage-site-api/internal/dialogue"
	"github.com/ramanDeveloper23/visage-site-api/internal/observability/metrics"
	"github.com/ramanDeveloper23/visage-site-api/internal/scheduling"
	"github.com/ramanDeveloper23/visage-site-api/internal/security"
	"github.com/ramanDeveloper23/visage-site-api/internal/services"
	"github.com/ramanDeveloper23/visage-site-api/internal/settings"
	"github.com/ramanDeveloper23/visage-site-api/internal/widget"
	"github.com/ramanDeveloper23/visage-site-api/pkg/logging"
)

func main() {
	// Load .env in development; production sets real env vars.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting visage-site-api server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Redis backs the settings store.
	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	settingsStore := settings.NewStore(redisClient)

	// Postgres is optional; without it the catalog runs in memory.
	var servicesRepo services.Repository = services.NewInMemoryRepository()
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		servicesRepo = services.NewPostgresRepository(pool)
		logger.Info("services catalog backed by postgres")
	} else {
		logger.Warn("DATABASE_URL not set, services catalog is in-memory")
	}

	reg := prometheus.NewRegistry()
	widgetMetrics := metrics.NewWidgetMetrics(reg)

	nonces := security.NewNonceService(cfg.NonceSecret, cfg.NonceTTL)
	graph := dialogue.DefaultGraph()
	resolver := settings.NewURLResolver(settingsStore, cfg.SiteHomeURL, logger)

	// Initialize handlers
	widgetHandler := widget.NewHandler(graph, resolver.Resolve, nonces, settingsStore, logger)
	dialogueHandler := dialogue.NewHandler(graph, resolver.Resolve, nonces, widgetMetrics, logger)
	bookingHandler := scheduling.NewHandler(nonces, widgetMetrics, logger, time.Now)
	servicesHandler := services.NewHandler(servicesRepo, logger)
	settingsHandler := settings.NewHandler(settingsStore, logger)

	// Setup router
	r := router.New(&router.Config{
		Logger:             logger,
		WidgetHandler:      widgetHandler,
		DialogueHandler:    dialogueHandler,
		BookingHandler:     bookingHandler,
		ServicesHandler:    servicesHandler,
		SettingsHandler:    settingsHandler,
		AdminAuthSecret:    cfg.AdminJWTSecret,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSec:    cfg.RateLimitPerSec,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
