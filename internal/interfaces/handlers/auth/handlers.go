package auth

import (
	"errors"

	authsvc "carmarket-backend/internal/application/auth"
	"carmarket-backend/internal/application/device"
	"carmarket-backend/internal/middleware"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers serve the demo sign-in of the calling device.
type Handlers struct {
	Devices *device.Manager
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) session(c *fiber.Ctx) (*authsvc.Session, error) {
	return h.Devices.Auth(c.UserContext(), middleware.DeviceID(c))
}

func authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, authsvc.ErrCredentialsRequired), errors.Is(err, authsvc.ErrInvalidEmail), errors.Is(err, authsvc.ErrNameRequired):
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case errors.Is(err, authsvc.ErrNotAuthenticated):
		return response.Unauthorized(c, "Unauthorized")
	default:
		return err
	}
}

// Login POST /api/v1/auth/login: any non-empty credentials sign in a demo user
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, authsvc.ErrCredentialsRequired.Error(), fiber.StatusBadRequest, nil)
	}
	s, err := h.session(c)
	if err != nil {
		return err
	}
	st, err := s.Login(req.Email, req.Password)
	if err != nil {
		return authError(c, err)
	}
	log.Info().Str("device_id", middleware.DeviceID(c)).Str("user_id", st.User.ID).Msg("User logged in")
	return response.Success(c, "Login successful", st, nil)
}

// Register POST /api/v1/auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req authsvc.Registration
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	s, err := h.session(c)
	if err != nil {
		return err
	}
	st, err := s.Register(req)
	if err != nil {
		return authError(c, err)
	}
	return response.SuccessCreated(c, "Registration successful", st, nil)
}

// Me GET /api/v1/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	user, err := s.Me()
	if err != nil {
		return authError(c, err)
	}
	return response.Success(c, "User fetched successfully", user, nil)
}

// Logout DELETE /api/v1/auth/logout: signing out twice is fine
func (h *Handlers) Logout(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	s.Logout()
	return response.Success(c, "Logout successful", s.Current(), nil)
}
