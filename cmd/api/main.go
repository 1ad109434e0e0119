package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"godev-site-backend/config"
	_ "godev-site-backend/docs" // Important for Swagger
	v1 "godev-site-backend/internal/delivery/http/v1"
	"godev-site-backend/internal/repository/postgres"
	"godev-site-backend/internal/usecase"
	"godev-site-backend/pkg/database"
	"godev-site-backend/pkg/email"
	"godev-site-backend/pkg/logger"
	"godev-site-backend/pkg/redis"
	"godev-site-backend/pkg/storage"
	"godev-site-backend/pkg/validation"
)

// @title           GoDev Site Backend API
// @version         1.0
// @description     Backend for the GoDev agency site: contact form and career application submissions.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting godev site backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting only; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup adapters: repository, file store, notifier
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	fileStore := storage.New(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.CVBucket)
	if !fileStore.IsConfigured() {
		logger.Log.Warn("File storage not configured - CV uploads will be skipped")
	}

	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not configured - notifications run in development no-op mode")
	}

	// 6. Setup UseCases
	validate := validation.New()
	contactUC := usecase.NewContactUsecase(emailService, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, fileStore, emailService, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:     contactUC,
		ApplicationUC: applicationUC,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
