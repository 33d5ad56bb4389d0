package middleware

import (
	"context"
	"errors"

	"carmarket-backend/internal/application/auth"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// SessionResolver returns the auth session of a device.
type SessionResolver interface {
	Auth(ctx context.Context, owner string) (*auth.Session, error)
}

// RequireAuth rejects requests whose device is not signed in. Must run after Device.
func RequireAuth(sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := DeviceID(c)
		if owner == "" {
			return response.Unauthorized(c, "Unauthorized")
		}
		s, err := sessions.Auth(c.UserContext(), owner)
		if err != nil {
			return err
		}
		user, err := s.Me()
		if err != nil {
			if errors.Is(err, auth.ErrNotAuthenticated) {
				return response.Unauthorized(c, "Unauthorized")
			}
			return err
		}
		c.Locals(userLocal, &user)
		return c.Next()
	}
}

// GetUser returns the signed-in user set by RequireAuth (nil otherwise).
func GetUser(c *fiber.Ctx) *domain.AuthUser {
	u, _ := c.Locals(userLocal).(*domain.AuthUser)
	return u
}
