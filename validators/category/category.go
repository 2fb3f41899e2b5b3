package categoryValidator

import (
	"strconv"
	"strings"

	"skillforge/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory validates the category creation body
func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Name is required")
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

// CategoryID validates the :id path parameter
func CategoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Category ID")
		}

		c.Locals("categoryID", uint(id))
		return c.Next()
	}
}
