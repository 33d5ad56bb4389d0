package health

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okPinger struct{}

func (okPinger) Ping() error { return nil }

func setupHealthHandlers(t *testing.T) *Handlers {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return &Handlers{Rdb: rdb, DB: okPinger{}, HealthAdminKey: "test-admin-key"}
}

func TestReset_Unauthorized(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/reset", h.Reset)

	resp, err := app.Test(httptest.NewRequest("GET", "/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "error", out["status"])
	assert.Equal(t, "Unauthorized", out["error"].(map[string]interface{})["message"])

	resp, err = app.Test(httptest.NewRequest("GET", "/reset?key=wrong", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestReset_Success(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/reset", h.Reset)

	ctx := context.Background()
	require.NoError(t, h.Rdb.Set(ctx, "health:global:req_total", "5", 0).Err())
	resp, err := app.Test(httptest.NewRequest("GET", "/reset?key=test-admin-key", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, err = h.Rdb.Get(ctx, "health:global:req_total").Result()
	assert.ErrorIs(t, err, redis.Nil)
	_, err = h.Rdb.Get(ctx, "health:global:start_time").Result()
	assert.NoError(t, err)
}

func TestReset_WithoutRedis(t *testing.T) {
	h := &Handlers{HealthAdminKey: "k"}
	app := fiber.New()
	app.Get("/reset", h.Reset)
	resp, err := app.Test(httptest.NewRequest("GET", "/reset?key=k", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestJSON_ReturnsStructure(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/json", h.JSON)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "carmarket-api", out["service"])
	assert.Equal(t, "ok", out["status"])
	assert.Contains(t, out, "runtime")
	assert.Contains(t, out, "traffic")
	assert.Contains(t, out, "dependencies")
}

func TestJSON_DegradedWithoutDatabase(t *testing.T) {
	h := &Handlers{}
	app := fiber.New()
	app.Get("/health/json", h.JSON)
	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestErrors_ReturnsArray(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/errors", h.Errors)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/errors", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, "[]", string(body))

	ctx := context.Background()
	h.Rdb.LPush(ctx, "health:global:error_log", `{"time":"2024-01-01T12:00:00Z","path":"/api","method":"GET","message":"test"}`)
	resp, err = app.Test(httptest.NewRequest("GET", "/health/errors", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	var arr []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &arr))
	require.Len(t, arr, 1)
	assert.Equal(t, "test", arr[0]["message"])
}
