package handlers

import (
	"context"
	"time"

	"grabbber/internal/services/revenue"
	"grabbber/internal/services/stats"
	"grabbber/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const recordTimeout = 500 * time.Millisecond

type RevenueHandler struct {
	stats  stats.Service
	logger *zap.Logger
}

func NewRevenueHandler(statsService stats.Service, logger *zap.Logger) *RevenueHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RevenueHandler{
		stats:  statsService,
		logger: logger,
	}
}

// ListTiers returns the selectable traffic tiers in display order.
func (h *RevenueHandler) ListTiers(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"tiers":   revenue.Tiers(),
		"default": revenue.DefaultTier,
	})
}

// GetEstimate returns the revenue summary and its display model for a tier.
func (h *RevenueHandler) GetEstimate(c *fiber.Ctx) error {
	tier := revenue.Tier(c.Params("tier"))

	summary, err := revenue.Estimate(tier)
	if err != nil {
		return utils.Error(c, err, fiber.Map{"tier": string(tier)})
	}

	h.recordSelection(c.UserContext(), tier)

	return utils.Success(c, fiber.Map{
		"summary": summary,
		"view":    revenue.Present(summary),
	})
}

func (h *RevenueHandler) recordSelection(parent context.Context, tier revenue.Tier) {
	if h.stats == nil {
		return
	}
	ctx, cancel := context.WithTimeout(parent, recordTimeout)
	defer cancel()

	if err := h.stats.RecordSelection(ctx, tier); err != nil {
		h.logger.Warn("failed to record tier selection", zap.String("tier", tier.String()), zap.Error(err))
	}
}
