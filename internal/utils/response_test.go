package utils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"grabbber/internal/services/revenue"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	app := fiber.New()
	app.Get("/mapped", func(c *fiber.Ctx) error {
		_, err := revenue.Estimate("nope")
		return Error(c, err, fiber.Map{"tier": "nope"})
	})
	app.Get("/unmapped", func(c *fiber.Ctx) error {
		return Error(c, errors.New("disk on fire"), nil)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/mapped", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"error": "invalid traffic tier", "code": "INVALID_TIER", "tier": "nope"}, body)

	resp, err = app.Test(httptest.NewRequest("GET", "/unmapped", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
