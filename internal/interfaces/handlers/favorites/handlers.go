package favorites

import (
	"errors"

	"carmarket-backend/internal/application/device"
	"carmarket-backend/internal/application/favorites"
	"carmarket-backend/internal/middleware"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Devices *device.Manager
}

type AddRequest struct {
	ListingID string `json:"listingId"`
}

func (h *Handlers) list(c *fiber.Ctx) (*favorites.List, error) {
	return h.Devices.Favorites(c.UserContext(), middleware.DeviceID(c))
}

// GET /api/v1/favorites
func (h *Handlers) List(c *fiber.Ctx) error {
	l, err := h.list(c)
	if err != nil {
		return err
	}
	ids := l.IDs()
	return response.Success(c, "Favorites fetched successfully", ids, response.Count(len(ids)))
}

// POST /api/v1/favorites
func (h *Handlers) Add(c *fiber.Ctx) error {
	var req AddRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	l, err := h.list(c)
	if err != nil {
		return err
	}
	if err := l.Add(req.ListingID); err != nil {
		if errors.Is(err, favorites.ErrListingIDRequired) {
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		}
		return err
	}
	return response.Success(c, "Favorite added successfully", l.IDs(), nil)
}

// DELETE /api/v1/favorites/:id
func (h *Handlers) Remove(c *fiber.Ctx) error {
	l, err := h.list(c)
	if err != nil {
		return err
	}
	l.Remove(c.Params("id"))
	return response.Success(c, "Favorite removed successfully", l.IDs(), nil)
}
