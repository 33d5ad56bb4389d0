package cart

import (
	"errors"

	"carmarket-backend/internal/application/cart"
	"carmarket-backend/internal/application/device"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/middleware"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Devices *device.Manager
}

type QuantityRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *Handlers) cart(c *fiber.Ctx) (*cart.Cart, error) {
	return h.Devices.Cart(c.UserContext(), middleware.DeviceID(c))
}

func cartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, cart.ErrItemIDRequired), errors.Is(err, cart.ErrInvalidPrice):
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case errors.Is(err, cart.ErrCartItemNotFound):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	default:
		return err
	}
}

// GET /api/v1/cart: items with totals
func (h *Handlers) Get(c *fiber.Ctx) error {
	ct, err := h.cart(c)
	if err != nil {
		return err
	}
	return response.Success(c, "Cart fetched successfully", ct.Summary(), nil)
}

// POST /api/v1/cart/items
func (h *Handlers) AddItem(c *fiber.Ctx) error {
	var item domain.CartItem
	if err := c.BodyParser(&item); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	ct, err := h.cart(c)
	if err != nil {
		return err
	}
	if _, err := ct.Add(item); err != nil {
		return cartError(c, err)
	}
	return response.Success(c, "Item added to cart", ct.Summary(), nil)
}

// PATCH /api/v1/cart/items/:id: a quantity of zero or less removes the item
func (h *Handlers) UpdateItem(c *fiber.Ctx) error {
	var req QuantityRequest
	if err := c.BodyParser(&req); err != nil || req.Quantity == nil {
		return response.Error(c, "quantity is required", fiber.StatusBadRequest, nil)
	}
	ct, err := h.cart(c)
	if err != nil {
		return err
	}
	if err := ct.UpdateQuantity(c.Params("id"), *req.Quantity); err != nil {
		return cartError(c, err)
	}
	return response.Success(c, "Cart updated successfully", ct.Summary(), nil)
}

// DELETE /api/v1/cart/items/:id
func (h *Handlers) RemoveItem(c *fiber.Ctx) error {
	ct, err := h.cart(c)
	if err != nil {
		return err
	}
	ct.Remove(c.Params("id"))
	return response.Success(c, "Item removed from cart", ct.Summary(), nil)
}

// DELETE /api/v1/cart
func (h *Handlers) Clear(c *fiber.Ctx) error {
	ct, err := h.cart(c)
	if err != nil {
		return err
	}
	ct.Clear()
	return response.Success(c, "Cart cleared successfully", ct.Summary(), nil)
}
