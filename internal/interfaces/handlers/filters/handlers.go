package filters

import (
	filtersvc "carmarket-backend/internal/application/filters"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/middleware"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers serve the active criteria of the calling device.
type Handlers struct {
	Service *filtersvc.Service
}

func criteriaMeta(c domain.Criteria) fiber.Map {
	return fiber.Map{"activeCount": c.ActiveCount()}
}

func parseCriteria(c *fiber.Ctx) (domain.Criteria, error) {
	var crit domain.Criteria
	if len(c.Body()) == 0 {
		return crit, nil
	}
	err := c.BodyParser(&crit)
	return crit, err
}

// GET /api/v1/filters
func (h *Handlers) Get(c *fiber.Ctx) error {
	crit, err := h.Service.Active(c.UserContext(), middleware.DeviceID(c))
	if err != nil {
		return err
	}
	return response.Success(c, "Filters fetched successfully", crit, criteriaMeta(crit))
}

// PATCH /api/v1/filters: sets the fields present in the body, keeps the rest
func (h *Handlers) Patch(c *fiber.Ctx) error {
	patch, err := parseCriteria(c)
	if err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	crit, err := h.Service.Patch(c.UserContext(), middleware.DeviceID(c), patch)
	if err != nil {
		return err
	}
	return response.Success(c, "Filters updated successfully", crit, criteriaMeta(crit))
}

// PUT /api/v1/filters: replaces the active criteria
func (h *Handlers) Replace(c *fiber.Ctx) error {
	next, err := parseCriteria(c)
	if err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	crit, err := h.Service.Replace(c.UserContext(), middleware.DeviceID(c), next)
	if err != nil {
		return err
	}
	return response.Success(c, "Filters replaced successfully", crit, criteriaMeta(crit))
}

// DELETE /api/v1/filters
func (h *Handlers) Reset(c *fiber.Ctx) error {
	if err := h.Service.Reset(c.UserContext(), middleware.DeviceID(c)); err != nil {
		return err
	}
	return response.Success(c, "Filters reset successfully", domain.Criteria{}, criteriaMeta(domain.Criteria{}))
}
