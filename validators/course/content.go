package courseValidator

import (
	"strconv"
	"strings"

	"skillforge/middleware"
	courseModels "skillforge/models/course"

	"github.com/gofiber/fiber/v2"
)

// DayParams validates the :courseId and :dayNumber path parameters
func DayParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID")
		}

		dayStr := strings.TrimSpace(c.Params("dayNumber"))
		dayNumber, err := strconv.Atoi(dayStr)
		if err != nil || dayNumber < 1 || dayNumber > courseModels.TotalCourseDays {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid day number")
		}

		c.Locals("courseID", uint(courseID))
		c.Locals("dayNumber", dayNumber)
		return c.Next()
	}
}

// SubmitQuiz validates the quiz submission body. Out-of-range answer indexes
// are not rejected here; any non-matching value simply scores as incorrect.
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SelectedAnswer int `json:"selectedAnswer"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
