package middleware

import (
	"strings"

	"speedxpress/internal/apperr"
	"speedxpress/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EmailKey is the Locals key holding the authenticated email.
const EmailKey = "email"

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   apperr.KindUnauthorized,
		"message": message,
		"data":    nil,
	})
}

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return unauthorized(c, "Authorization header format must be 'Bearer <token>'")
		}

		email, err := authService.ValidateToken(parts[1])
		if err != nil {
			logger.Debug("rejected request token",
				zap.String("path", c.Path()),
				zap.Error(err))
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(EmailKey, email)
		return c.Next()
	}
}

// CurrentEmail returns the email of the authenticated caller, or "".
func CurrentEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(EmailKey).(string)
	return email
}

// RequireOwner fails with a forbidden error unless the caller's email
// matches one of the non-empty owners.
func RequireOwner(c *fiber.Ctx, owners ...string) error {
	email := CurrentEmail(c)
	if email == "" {
		return apperr.New(apperr.KindUnauthorized, "authentication required")
	}
	for _, owner := range owners {
		if owner != "" && strings.EqualFold(owner, email) {
			return nil
		}
	}
	return apperr.New(apperr.KindForbidden, "token does not belong to the resource owner")
}
