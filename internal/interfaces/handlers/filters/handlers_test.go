package filters

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	filtersvc "carmarket-backend/internal/application/filters"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	deviceA = "3f1c2a9e-7b4d-4e8a-9c21-5d6e7f809a1b"
	deviceB = "b7e4d2c1-0a9f-4b3e-8d76-1c2b3a4f5e6d"
)

func setupApp(t *testing.T) *fiber.App {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	h := &Handlers{Service: &filtersvc.Service{Store: &filtersvc.RedisStore{Rdb: rdb}}}
	app := fiber.New()
	app.Use(middleware.Device(middleware.DeviceConfig{}))
	app.Get("/filters", h.Get)
	app.Patch("/filters", h.Patch)
	app.Put("/filters", h.Replace)
	app.Delete("/filters", h.Reset)
	return app
}

type criteriaBody struct {
	Data     domain.Criteria        `json:"data"`
	Metadata map[string]interface{} `json:"metadata"`
}

func call(t *testing.T, app *fiber.App, method, deviceID string, body string) (int, criteriaBody) {
	var r io.Reader
	if body != "" {
		r = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, "/filters", r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.DeviceHeader, deviceID)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out criteriaBody
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestFilters_PatchMergesAndBrandReplaces(t *testing.T) {
	app := setupApp(t)

	code, out := call(t, app, "GET", deviceA, "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, domain.Criteria{}, out.Data)
	assert.Equal(t, 0.0, out.Metadata["activeCount"])

	call(t, app, "PATCH", deviceA, `{"brand":"BMW","maxPrice":30000}`)
	_, out = call(t, app, "PATCH", deviceA, `{"brand":"Audi","fuelType":["Diesel"]}`)
	assert.Equal(t, "Audi", out.Data.Brand)
	require.NotNil(t, out.Data.MaxPrice)
	assert.Equal(t, 30000.0, *out.Data.MaxPrice)
	assert.Equal(t, []string{"Diesel"}, out.Data.FuelType)
	assert.Equal(t, 3.0, out.Metadata["activeCount"])

	_, other := call(t, app, "GET", deviceB, "")
	assert.Equal(t, domain.Criteria{}, other.Data)
}

func TestFilters_ReplaceAndReset(t *testing.T) {
	app := setupApp(t)
	call(t, app, "PATCH", deviceA, `{"brand":"BMW","maxPrice":30000}`)

	_, out := call(t, app, "PUT", deviceA, `{"minYear":2019,"fuelType":[]}`)
	assert.Equal(t, domain.Criteria{MinYear: domain.IntPtr(2019)}, out.Data)

	code, _ := call(t, app, "DELETE", deviceA, "")
	assert.Equal(t, fiber.StatusOK, code)
	_, out = call(t, app, "GET", deviceA, "")
	assert.True(t, out.Data.IsEmpty())
}

func TestFilters_InvalidBody(t *testing.T) {
	app := setupApp(t)
	code, _ := call(t, app, "PATCH", deviceA, `{"minYear":"neu"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	code, _ = call(t, app, "PUT", deviceA, `not json`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}
