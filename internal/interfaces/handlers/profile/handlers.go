package profile

import (
	"errors"

	"carmarket-backend/internal/application/device"
	"carmarket-backend/internal/application/profile"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/middleware"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Devices *device.Manager
}

func (h *Handlers) profile(c *fiber.Ctx) (*profile.Profile, error) {
	return h.Devices.Profile(c.UserContext(), middleware.DeviceID(c))
}

// GET /api/v1/profile
func (h *Handlers) Get(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return err
	}
	return response.Success(c, "Profile fetched successfully", p.Get(), nil)
}

// PATCH /api/v1/profile
func (h *Handlers) Update(c *fiber.Ctx) error {
	var req profile.Update
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	p, err := h.profile(c)
	if err != nil {
		return err
	}
	updated, err := p.Update(req)
	if err != nil {
		if errors.Is(err, profile.ErrNameRequired) || errors.Is(err, profile.ErrInvalidEmail) {
			return response.BadRequest(c, err.Error())
		}
		return err
	}
	return response.Success(c, "Profile updated successfully", updated, nil)
}

// PUT /api/v1/profile/settings
func (h *Handlers) UpdateSettings(c *fiber.Ctx) error {
	var req domain.ProfileSettings
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	p, err := h.profile(c)
	if err != nil {
		return err
	}
	return response.Success(c, "Settings updated successfully", p.UpdateSettings(req), nil)
}
