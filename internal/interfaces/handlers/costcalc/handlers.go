package costcalc

import (
	"errors"

	"carmarket-backend/internal/application/costcalc"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct{}

// POST /api/v1/cost-calculator: omitted inputs take the calculator defaults
func (h *Handlers) Calculate(c *fiber.Ctx) error {
	var in costcalc.Input
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
		}
	}
	res, err := costcalc.Calculate(in)
	if err != nil {
		if errors.Is(err, costcalc.ErrNegativeInput) {
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		}
		return err
	}
	return response.Success(c, "Costs calculated successfully", res, nil)
}
