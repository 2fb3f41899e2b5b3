package contentRoutes

import (
	courseController "skillforge/controllers/course"
	"skillforge/middleware"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up gated day-content and quiz routes
func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/api/content", middleware.JWTMiddleware)

	contentGroup.Get("/:courseId/day/:dayNumber", courseValidator.DayParams(), courseController.GetDayContent)
	contentGroup.Post("/:courseId/day/:dayNumber/quiz", courseValidator.DayParams(), courseValidator.SubmitQuiz(), courseController.SubmitQuiz)
}
