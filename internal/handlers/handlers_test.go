package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"grabbber/internal/services/inquiry"
	"grabbber/internal/services/revenue"
	"grabbber/internal/services/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStats struct {
	mock.Mock
}

func (m *MockStats) RecordSelection(ctx context.Context, tier revenue.Tier) error {
	return m.Called(ctx, tier).Error(0)
}

func (m *MockStats) RecordInquiry(ctx context.Context, tier revenue.Tier) error {
	return m.Called(ctx, tier).Error(0)
}

func (m *MockStats) Snapshot(ctx context.Context) (*stats.Snapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(*stats.Snapshot)
	return snap, args.Error(1)
}

type MockHealth struct {
	mock.Mock
}

func (m *MockHealth) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockPool struct {
	mock.Mock
}

func (m *MockPool) GetStats() *redis.PoolStats {
	stats, _ := m.Called().Get(0).(*redis.PoolStats)
	return stats
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestRevenueHandler_GetEstimate(t *testing.T) {
	statsSvc := new(MockStats)
	statsSvc.On("RecordSelection", mock.Anything, revenue.Tier50MTo100M).Return(nil)

	app := fiber.New()
	h := NewRevenueHandler(statsSvc, nil)
	app.Get("/revenue/:tier", h.GetEstimate)

	resp, err := app.Test(httptest.NewRequest("GET", "/revenue/50m-100m", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp.Body)
	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, float64(1100000), summary["total"])
	assert.Equal(t, float64(330000), summary["user_share"])

	view := body["view"].(map[string]interface{})
	share := view["share"].(map[string]interface{})
	assert.Equal(t, "$330,000/month", share["text"])
	statsSvc.AssertExpectations(t)
}

func TestRevenueHandler_GetEstimateInvalidTier(t *testing.T) {
	statsSvc := new(MockStats)

	app := fiber.New()
	app.Get("/revenue/:tier", NewRevenueHandler(statsSvc, nil).GetEstimate)

	resp, err := app.Test(httptest.NewRequest("GET", "/revenue/unknown-tier", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "INVALID_TIER", body["code"])
	assert.Equal(t, "unknown-tier", body["tier"])
	assert.NotContains(t, body, "summary")
	statsSvc.AssertNotCalled(t, "RecordSelection", mock.Anything, mock.Anything)
}

func TestRevenueHandler_StatsFailureDoesNotFailEstimate(t *testing.T) {
	statsSvc := new(MockStats)
	statsSvc.On("RecordSelection", mock.Anything, revenue.Tier500KTo1M).Return(errors.New("redis down"))

	app := fiber.New()
	app.Get("/revenue/:tier", NewRevenueHandler(statsSvc, nil).GetEstimate)

	resp, err := app.Test(httptest.NewRequest("GET", "/revenue/500k-1m", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRevenueHandler_ListTiers(t *testing.T) {
	app := fiber.New()
	app.Get("/revenue/tiers", NewRevenueHandler(nil, nil).ListTiers)

	resp, err := app.Test(httptest.NewRequest("GET", "/revenue/tiers", nil))
	require.NoError(t, err)

	body := decode(t, resp.Body)
	assert.Equal(t, "500k-1m", body["default"])
	tiers := body["tiers"].([]interface{})
	require.Len(t, tiers, 5)
	assert.Equal(t, "50m-100m", tiers[4].(map[string]interface{})["tier"])
}

func TestInquiryHandler_Submit(t *testing.T) {
	app := fiber.New()
	app.Post("/inquiries", NewInquiryHandler(inquiry.NewService(nil, nil)).Submit)

	t.Run("accepted", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/inquiries", strings.NewReader(
			`{"name":"Dana","email":"dana@site.io","website":"https://site.io","traffic":"1m-10m"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decode(t, resp.Body)
		assert.Len(t, body["reference"], 36)
		assert.Equal(t, float64(5000), body["reset_after_ms"])
	})

	t.Run("invalid fields", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/inquiries", strings.NewReader(
			`{"name":"","email":"nope","website":"https://site.io","traffic":"1m-10m"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

		body := decode(t, resp.Body)
		assert.Equal(t, "INVALID_INQUIRY", body["code"])
		fields := body["fields"].(map[string]interface{})
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/inquiries", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name    string
		checker HealthChecker
		want    string
	}{
		{name: "no redis", checker: nil, want: "disabled"},
		{name: "redis up", checker: func() HealthChecker {
			m := new(MockHealth)
			m.On("HealthCheck", mock.Anything).Return(nil)
			return m
		}(), want: "connected"},
		{name: "redis down", checker: func() HealthChecker {
			m := new(MockHealth)
			m.On("HealthCheck", mock.Anything).Return(errors.New("dial tcp"))
			return m
		}(), want: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler(tt.checker).HealthCheck)

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			body := decode(t, resp.Body)
			services := body["services"].(map[string]interface{})
			assert.Equal(t, tt.want, services["redis"])
		})
	}
}

func TestCacheStats(t *testing.T) {
	t.Run("pool counters", func(t *testing.T) {
		pool := new(MockPool)
		pool.On("GetStats").Return(&redis.PoolStats{Hits: 3, Misses: 1, TotalConns: 2, IdleConns: 1})

		app := fiber.New()
		app.Get("/cache", CacheStats(pool))

		resp, err := app.Test(httptest.NewRequest("GET", "/cache", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decode(t, resp.Body)
		poolStats := body["pool_stats"].(map[string]interface{})
		assert.Equal(t, float64(3), poolStats["hits"])
		assert.Equal(t, float64(1), poolStats["misses"])
		assert.Equal(t, float64(2), poolStats["total_conns"])
		assert.Equal(t, float64(1), poolStats["idle_conns"])
		assert.Equal(t, float64(0), poolStats["timeouts"])
		pool.AssertExpectations(t)
	})

	t.Run("no redis", func(t *testing.T) {
		app := fiber.New()
		app.Get("/cache", CacheStats(nil))

		resp, err := app.Test(httptest.NewRequest("GET", "/cache", nil))
		require.NoError(t, err)
		assert.Equal(t, "disabled", decode(t, resp.Body)["redis"])
	})
}

func TestHeroStats(t *testing.T) {
	app := fiber.New()
	app.Get("/stats/hero", HeroStats)

	resp, err := app.Test(httptest.NewRequest("GET", "/stats/hero", nil))
	require.NoError(t, err)

	body := decode(t, resp.Body)
	assert.Equal(t, float64(30), body["share_percent"])
	assert.Len(t, body["frames"], 30)
}
