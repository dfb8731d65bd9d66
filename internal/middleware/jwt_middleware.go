package middleware

import (
	"strings"

	"inventory/internal/services"
	"inventory/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthRequired.
const (
	userIDKey   = "user_id"
	usernameKey = "username"
)

// AuthRequired rejects requests without a valid bearer token. Rejections
// go through the application error handler as 401 errors.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header is required")
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header format must be 'Bearer <token>'")
		}

		claims, err := authService.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			logger.Warn(c.UserContext()).Err(err).Str("path", c.Path()).Msg("rejected bearer token")
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		userID, _ := claims[userIDKey].(string)
		username, _ := claims[usernameKey].(string)
		c.Locals(userIDKey, userID)
		c.Locals(usernameKey, username)
		return c.Next()
	}
}

// Username returns the user authenticated by AuthRequired, or "".
func Username(c *fiber.Ctx) string {
	username, _ := c.Locals(usernameKey).(string)
	return username
}

// UserID returns the id of the user authenticated by AuthRequired, or "".
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
