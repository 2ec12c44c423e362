package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	httpapi "toolshed-backend/internal/api/http"
	"toolshed-backend/internal/checkout"
	"toolshed-backend/internal/config"
	"toolshed-backend/internal/georef"
	"toolshed-backend/internal/logger"
	"toolshed-backend/internal/repository/postgres"
	"toolshed-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local overrides from .env, if present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Toolshed Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize georef cache. Redis backs the persistent tier; without it the
	// cache degrades to per-process memory only.
	var geoStore georef.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("Redis unreachable, falling back to in-memory geo store", "error", err)
			geoStore = georef.NewMemoryStore()
		} else {
			logger.Info("Redis connection established", "addr", cfg.Redis.Addr)
			geoStore = georef.NewRedisStore(rdb)
		}
	} else {
		logger.Info("No redis configured, using in-memory geo store")
		geoStore = georef.NewMemoryStore()
	}

	geoClient := georef.NewHTTPClient(cfg.Geo.BaseURL, time.Duration(cfg.Geo.TimeoutSeconds)*time.Second)
	geoCache := georef.NewCache(geoClient, geoStore, georef.Options{
		Attempts:  cfg.Geo.RetryAttempts,
		BaseDelay: time.Duration(cfg.Geo.RetryBaseDelayMs) * time.Millisecond,
	})

	// Initialize Checkout Provider
	var provider checkout.Provider
	if cfg.Checkout.Provider == "" || cfg.Checkout.Provider == "mock" {
		logger.Info("Using mock checkout provider")
		provider = checkout.NewMockProvider(cfg.Checkout.SuccessURL, cfg.Checkout.CancelURL)
	} else {
		logger.Error("Unsupported checkout provider", "provider", cfg.Checkout.Provider)
		log.Fatalf("Checkout provider '%s' not yet implemented", cfg.Checkout.Provider)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	pricing := service.PricingPolicy{
		SecurityDepositCents: cfg.Pricing.SecurityDepositCents,
		DamageDepositCents:   cfg.Pricing.DamageDepositCents,
		ProDiscountPercent:   cfg.Pricing.ProDiscountPercent,
	}
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.ToolRepository,
		store.UserRepository,
		store.ReviewRepository,
		store.PayoutRepository,
		emailSvc,
		pricing,
	)
	paymentSvc := service.NewPaymentService(store.BookingRepository, provider, cfg.Pricing.SecurityDepositCents)
	reviewSvc := service.NewReviewService(store.ReviewRepository, store.BookingRepository)
	toolSvc := service.NewToolService(store.ToolRepository, store.UserRepository)
	payoutSvc := service.NewPayoutService(store.PayoutRepository, store.BookingRepository)
	userSvc := service.NewUserService(store.UserRepository)
	reportSvc := service.NewReportService(store.ReportRepository, store.UserRepository)
	adminSvc := service.NewAdminService(store.UserRepository, store.StatsRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(bookingSvc, paymentSvc, reviewSvc, toolSvc, payoutSvc, userSvc, reportSvc, adminSvc, geoCache)
	srv := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
