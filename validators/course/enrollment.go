package courseValidator

import (
	courseModels "skillforge/models/course"

	"skillforge/middleware"

	"github.com/gofiber/fiber/v2"
)

// Enroll validates the enrollment body and stores the course ID in Locals
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"courseId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.CourseID == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required")
		}

		c.Locals("courseID", reqData.CourseID)
		return c.Next()
	}
}

// UpdateProgress validates a day-completion event
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID  uint `json:"courseId"`
			DayNumber int  `json:"dayNumber"`
			Completed bool `json:"completed"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required"
		}
		if reqData.DayNumber < 1 || reqData.DayNumber > courseModels.TotalCourseDays {
			errors["dayNumber"] = "Day number must be between 1 and 5"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
