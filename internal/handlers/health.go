package handlers

import (
	"context"
	"time"

	"grabbber/internal/services/stats"
	"grabbber/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// PoolStatsProvider exposes the Redis connection pool counters.
type PoolStatsProvider interface {
	GetStats() *redis.PoolStats
}

type HealthHandler struct {
	redis HealthChecker
}

func NewHealthHandler(redis HealthChecker) *HealthHandler {
	return &HealthHandler{redis: redis}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	redisStatus := "connected"
	if h.redis == nil {
		redisStatus = "disabled"
	} else {
		ctx, cancel := context.WithTimeout(c.UserContext(), time.Second)
		defer cancel()
		if err := h.redis.HealthCheck(ctx); err != nil {
			redisStatus = "unavailable"
		}
	}

	return utils.Success(c, fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"services": fiber.Map{
			"redis": redisStatus,
		},
	})
}

// HeroStats returns the hero section counters.
func HeroStats(c *fiber.Ctx) error {
	return utils.Success(c, stats.HeroStats())
}

// CacheStats reports the Redis connection pool counters.
func CacheStats(pool PoolStatsProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if pool == nil {
			return utils.Success(c, fiber.Map{"redis": "disabled"})
		}
		poolStats := pool.GetStats()
		if poolStats == nil {
			poolStats = &redis.PoolStats{}
		}

		return utils.Success(c, fiber.Map{
			"pool_stats": fiber.Map{
				"hits":        poolStats.Hits,
				"misses":      poolStats.Misses,
				"timeouts":    poolStats.Timeouts,
				"total_conns": poolStats.TotalConns,
				"idle_conns":  poolStats.IdleConns,
				"stale_conns": poolStats.StaleConns,
			},
		})
	}
}
