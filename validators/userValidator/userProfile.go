package userValidator

import (
	"strings"

	"skillforge/middleware"

	"github.com/gofiber/fiber/v2"
)

const maxAvatarSize = 5 * 1024 * 1024 // 5MB

// UpdateProfile validates the profile edit payload and the optional avatar
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name" form:"name"`
			Bio  string `json:"bio" form:"bio"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Name = strings.TrimSpace(reqData.Name)

		if file, err := c.FormFile("avatar"); err == nil {
			if file.Size > maxAvatarSize {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "File size too large. Maximum size is 5MB.")
			}
			contentType := file.Header.Get("Content-Type")
			if !strings.HasPrefix(contentType, "image/") {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Only image files are allowed.")
			}
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
