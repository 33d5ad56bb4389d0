package profile

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"carmarket-backend/internal/application/device"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/infrastructure/snapshot"
	"carmarket-backend/internal/middleware"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	deviceA = "3f1c2a9e-7b4d-4e8a-9c21-5d6e7f809a1b"
	deviceB = "b7e4d2c1-0a9f-4b3e-8d76-1c2b3a4f5e6d"
)

func setupApp(t *testing.T) *fiber.App {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	store := &snapshot.GormStore{DB: db}
	require.NoError(t, store.AutoMigrate())

	h := &Handlers{Devices: device.NewManager(snapshot.NewWriter(store, 1))}
	app := fiber.New()
	app.Use(middleware.Device(middleware.DeviceConfig{}))
	app.Get("/profile", h.Get)
	app.Patch("/profile", h.Update)
	app.Put("/profile/settings", h.UpdateSettings)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, deviceID, body string) (int, domain.UserProfile) {
	var r io.Reader
	if body != "" {
		r = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.DeviceHeader, deviceID)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out struct {
		Data domain.UserProfile `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out.Data
}

func TestProfile_UpdateAndSettings(t *testing.T) {
	app := setupApp(t)

	code, p := call(t, app, "GET", "/profile", deviceA, "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Max Mustermann", p.Name)

	code, p = call(t, app, "PATCH", "/profile", deviceA, `{"name":"Erika Musterfrau","notifications":{"messages":false,"forumReplies":true,"newListings":false}}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Erika Musterfrau", p.Name)
	assert.Equal(t, "max.mustermann@example.com", p.Email)
	assert.False(t, p.Notifications.Messages)
	assert.True(t, p.Notifications.ForumReplies)

	code, p = call(t, app, "PUT", "/profile/settings", deviceA, `{"darkMode":true,"pushNotifications":false,"locationServices":true}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.True(t, p.Settings.DarkMode)
	assert.Equal(t, "Erika Musterfrau", p.Name)

	_, p = call(t, app, "GET", "/profile", deviceB, "")
	assert.Equal(t, "Max Mustermann", p.Name)
	assert.False(t, p.Settings.DarkMode)
}

func TestProfile_RejectsInvalidEdits(t *testing.T) {
	app := setupApp(t)

	code, _ := call(t, app, "PATCH", "/profile", deviceA, `{"email":"not-an-address"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	code, _ = call(t, app, "PATCH", "/profile", deviceA, `{"name":""}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	code, _ = call(t, app, "PATCH", "/profile", deviceA, `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	_, p := call(t, app, "GET", "/profile", deviceA, "")
	assert.Equal(t, "Max Mustermann", p.Name)
}
