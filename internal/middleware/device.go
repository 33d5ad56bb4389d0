package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	DeviceHeader     = "X-Device-Id"
	DeviceCookieName = "carmarket.did"
	deviceLocal      = "device_id"
	deviceMaxAge     = 365 * 24 * time.Hour
	deviceIDLen      = 36
)

// DeviceConfig controls the device cookie flags.
type DeviceConfig struct {
	AllowCrossSiteDev bool
	IsProduction      bool
}

// Device resolves the device that owns per-device state (filters, saved searches,
// favorites, cart, auth). The X-Device-Id header wins over the cookie; a request
// carrying neither gets a fresh id, returned as a cookie and in the header.
func Device(cfg DeviceConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := sanitizeDeviceID(c.Get(DeviceHeader))
		if id == "" {
			id = sanitizeDeviceID(c.Cookies(DeviceCookieName))
		}
		if id == "" {
			id = uuid.New().String()
			cookie := DeviceCookie(cfg)
			cookie.Value = id
			c.Cookie(&cookie)
		}
		c.Locals(deviceLocal, id)
		c.Set(DeviceHeader, id)
		return c.Next()
	}
}

// sanitizeDeviceID accepts only the canonical 36-character uuid form and returns it lower-cased.
func sanitizeDeviceID(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) != deviceIDLen {
		return ""
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return ""
	}
	return id.String()
}

// DeviceID returns the id resolved by Device, or "" when the middleware did not run.
func DeviceID(c *fiber.Ctx) string {
	id, _ := c.Locals(deviceLocal).(string)
	return id
}

// DeviceCookie returns the cookie options without a value.
func DeviceCookie(cfg DeviceConfig) fiber.Cookie {
	sameSite := "Lax"
	if cfg.AllowCrossSiteDev {
		sameSite = "None"
	}
	return fiber.Cookie{
		Name:     DeviceCookieName,
		Path:     "/",
		MaxAge:   int(deviceMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   cfg.IsProduction && cfg.AllowCrossSiteDev,
		SameSite: sameSite,
	}
}
