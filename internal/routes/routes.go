// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"time"

	"grabbber/internal/handlers"
	"grabbber/internal/middleware"
	"grabbber/internal/models"
	"grabbber/internal/services/auth"
	"grabbber/internal/services/inquiry"
	"grabbber/internal/services/stats"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Dependencies are the services the routes are wired to.
type Dependencies struct {
	Stats   stats.Service
	Auth    auth.Service
	Inquiry inquiry.Service
	Health  handlers.HealthChecker
	Cache   handlers.PoolStatsProvider
	Logger  *zap.Logger

	// RateLimitStorage backs the inquiry and login limiters; nil keeps the
	// counters in memory.
	RateLimitStorage  fiber.Storage
	InquiryRateLimit  int
	InquiryRateWindow time.Duration
}

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	if deps.InquiryRateLimit <= 0 {
		deps.InquiryRateLimit = 5
	}
	if deps.InquiryRateWindow <= 0 {
		deps.InquiryRateWindow = time.Minute
	}

	revenueHandler := handlers.NewRevenueHandler(deps.Stats, deps.Logger)
	inquiryHandler := handlers.NewInquiryHandler(deps.Inquiry)
	adminHandler := handlers.NewAdminHandler(deps.Auth, deps.Stats, deps.Logger)
	healthHandler := handlers.NewHealthHandler(deps.Health)
	authMiddleware := middleware.NewAuthMiddleware(deps.Auth, deps.Logger)

	app.Get("/health", healthHandler.HealthCheck)

	v1 := app.Group("/api/v1")
	setupRevenueRoutes(v1, revenueHandler)
	v1.Get("/stats/hero", handlers.HeroStats)
	v1.Post("/inquiries",
		middleware.RateLimit("inquiry", deps.InquiryRateLimit, deps.InquiryRateWindow, deps.RateLimitStorage),
		inquiryHandler.Submit,
	)

	setupAdminRoutes(app, adminHandler, authMiddleware, deps)
}

func setupRevenueRoutes(router fiber.Router, h *handlers.RevenueHandler) {
	revenue := router.Group("/revenue")
	revenue.Get("/tiers", h.ListTiers)
	revenue.Get("/:tier", h.GetEstimate)
}

func setupAdminRoutes(app *fiber.App, h *handlers.AdminHandler, authMW *middleware.AuthMiddleware, deps Dependencies) {
	app.Post("/api/admin/login",
		middleware.RateLimit("login", 5, time.Minute, deps.RateLimitStorage),
		h.Login,
	)

	admin := app.Group("/api/admin", authMW.Handler, middleware.AdminAuthMiddleware)
	admin.Get("/stats", middleware.HasPermission(models.PermissionReadStats), h.Stats)
	admin.Get("/cache", middleware.HasPermission(models.PermissionReadStats), handlers.CacheStats(deps.Cache))
}
