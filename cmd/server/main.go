// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grabbber/internal/config"
	"grabbber/internal/logger"
	"grabbber/internal/repositories/cache"
	"grabbber/internal/routes"
	"grabbber/internal/services/auth"
	"grabbber/internal/services/inquiry"
	"grabbber/internal/services/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	log := logger.Must(cfg.IsProduction(), cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	// Redis backs counters and rate limiting
	redisClient := cache.NewRedisClient(cfg.Redis)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := cache.Ping(pingCtx, redisClient); err != nil {
		log.Warn("redis unavailable at startup, counters will fail until it recovers", zap.Error(err))
	} else {
		log.Info("connected to redis", zap.String("host", cfg.Redis.Host), zap.String("port", cfg.Redis.Port))
	}
	cancel()

	cacheService := cache.NewCacheService(redisClient)
	defer func() {
		if err := cacheService.Close(); err != nil {
			log.Warn("failed to close redis connection", zap.Error(err))
		}
	}()

	statsService := stats.NewService(cacheService, log.Named("stats"))
	inquiryService := inquiry.NewService(statsService, log.Named("inquiry"))
	authService := auth.NewService(auth.Config{
		AdminEmail:        cfg.AdminEmail,
		AdminPasswordHash: cfg.AdminPasswordHash,
		JWTSecret:         cfg.JWTSecret,
		TokenTTL:          cfg.TokenTTL,
	}, log.Named("auth"))

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	if cfg.AdminPasswordHash == "" {
		log.Warn("ADMIN_PASSWORD_HASH not set, admin login disabled")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "grabbber",
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(recover.New())

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Routes
	routes.SetupRoutes(app, routes.Dependencies{
		Stats:             statsService,
		Auth:              authService,
		Inquiry:           inquiryService,
		Health:            cacheService,
		Cache:             cacheService,
		Logger:            log,
		RateLimitStorage:  cache.NewStorage(redisClient, "limiter:"),
		InquiryRateLimit:  cfg.InquiryRateLimit,
		InquiryRateWindow: cfg.InquiryRateWindow,
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
	}()

	// Start server
	log.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
