package savedsearches

import (
	"errors"

	"carmarket-backend/internal/application/savedsearches"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/middleware"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *savedsearches.Service
}

// SaveRequest names a search. Filters is optional on create: when absent the
// device's active criteria are saved.
type SaveRequest struct {
	Name    string           `json:"name"`
	Filters *domain.Criteria `json:"filters"`
}

func searchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, savedsearches.ErrNameRequired):
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case errors.Is(err, savedsearches.ErrSearchNotFound):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	default:
		return err
	}
}

// GET /api/v1/saved-searches
func (h *Handlers) List(c *fiber.Ctx) error {
	list, err := h.Service.List(c.UserContext(), middleware.DeviceID(c))
	if err != nil {
		return err
	}
	return response.Success(c, "Saved searches fetched successfully", list, response.Count(len(list)))
}

// POST /api/v1/saved-searches
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	saved, err := h.Service.Create(c.UserContext(), middleware.DeviceID(c), req.Name, req.Filters)
	if err != nil {
		return searchError(c, err)
	}
	return response.SuccessCreated(c, "Search saved successfully", saved, nil)
}

// GET /api/v1/saved-searches/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	saved, err := h.Service.Get(c.UserContext(), middleware.DeviceID(c), c.Params("id"))
	if err != nil {
		return searchError(c, err)
	}
	return response.Success(c, "Saved search fetched successfully", saved, nil)
}

// PUT /api/v1/saved-searches/:id: replaces name and filters
func (h *Handlers) Update(c *fiber.Ctx) error {
	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	var crit domain.Criteria
	if req.Filters != nil {
		crit = *req.Filters
	}
	saved, err := h.Service.Update(c.UserContext(), middleware.DeviceID(c), c.Params("id"), req.Name, crit)
	if err != nil {
		return searchError(c, err)
	}
	return response.Success(c, "Saved search updated successfully", saved, nil)
}

// DELETE /api/v1/saved-searches/:id: deleting an unknown id succeeds
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Service.Delete(c.UserContext(), middleware.DeviceID(c), id); err != nil {
		return err
	}
	return response.Success(c, "Saved search deleted successfully", fiber.Map{"id": id}, nil)
}

// POST /api/v1/saved-searches/:id/apply: the saved filters become the active criteria
func (h *Handlers) Apply(c *fiber.Ctx) error {
	crit, err := h.Service.Reapply(c.UserContext(), middleware.DeviceID(c), c.Params("id"))
	if err != nil {
		return searchError(c, err)
	}
	return response.Success(c, "Saved search applied successfully", crit, fiber.Map{"activeCount": crit.ActiveCount()})
}
