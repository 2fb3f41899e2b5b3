package middleware

import (
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
)

// HasRole is the single place role membership is tested
func HasRole(actor models.Role, required ...models.Role) bool {
	for _, r := range required {
		if actor == r {
			return true
		}
	}
	return false
}

// RequireRoles returns a middleware that rejects callers whose role is not in
// the required set. Must run after JWTMiddleware.
func RequireRoles(required ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		if !HasRole(role, required...) {
			return ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to access this resource")
		}

		return c.Next()
	}
}
