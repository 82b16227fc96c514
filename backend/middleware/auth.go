package middleware

import (
	"pandas-platform/backend/models"
	"pandas-platform/backend/services"
	"pandas-platform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves the session token and stores the user for the
// handlers below it. Failures go to the app error handler as 401.
func AuthMiddleware(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.ResolveSession(c.UserContext(), utils.ExtractToken(c))
		if err != nil {
			return err
		}
		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (*models.PublicUser, error) {
	user, ok := c.Locals(currentUserKey).(*models.PublicUser)
	if !ok || user == nil {
		return nil, utils.NewAuthError("Access denied. No authentication token provided.")
	}
	return user, nil
}
