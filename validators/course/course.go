package courseValidator

import (
	"strconv"
	"strings"

	"skillforge/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id path parameter and stores it in Locals
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID")
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

// CreateCourse validates the course creation payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" form:"title"`
			Description string `json:"description" form:"description"`
			CategoryID  uint   `json:"category" form:"category"`
			Days        string `json:"days" form:"days"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		errors := make(map[string]string)
		if reqData.Title == "" {
			errors["title"] = "Title is required"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required"
		}
		if reqData.CategoryID == 0 {
			errors["category"] = "Category is required"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the course update payload; all fields optional
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" form:"title"`
			Description string `json:"description" form:"description"`
			CategoryID  uint   `json:"category" form:"category"`
			Days        string `json:"days" form:"days"`
			IsPublished *bool  `json:"isPublished" form:"isPublished"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// SubmitReview validates the review payload
func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.Rating < 1 || reqData.Rating > 5 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Rating must be between 1 and 5")
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
