package handlers

import (
	"grabbber/internal/services/auth"
	"grabbber/internal/services/stats"
	"grabbber/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdminHandler struct {
	authService  auth.Service
	statsService stats.Service
	logger       *zap.Logger
}

func NewAdminHandler(authService auth.Service, statsService stats.Service, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{
		authService:  authService,
		statsService: statsService,
		logger:       logger,
	}
}

// Login exchanges admin credentials for an access token.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	token, claims, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		return utils.Error(c, err, nil)
	}

	return utils.Success(c, fiber.Map{
		"access_token": token,
		"expires_at":   claims.ExpiresAt.Time,
		"permissions":  claims.Permissions,
	})
}

// Stats reports tier selection and inquiry counters.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	snap, err := h.statsService.Snapshot(c.UserContext())
	if err != nil {
		h.logger.Error("failed to read stats", zap.Error(err))
		return utils.InternalError(c, "Failed to read stats")
	}
	return utils.Success(c, snap)
}
