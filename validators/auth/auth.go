package authValidator

import (
	"strings"

	"skillforge/middleware"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Role     string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))

		if reqData.Name == "" || reqData.Email == "" || reqData.Password == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Please provide name, email, and password")
		}

		if !strings.Contains(reqData.Email, "@") {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email address")
		}

		if len(reqData.Password) < 6 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Password must be at least 6 characters")
		}

		if reqData.Role != "" && !models.ValidRole(reqData.Role) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid role")
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))

		if reqData.Email == "" || reqData.Password == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Please provide email and password")
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
