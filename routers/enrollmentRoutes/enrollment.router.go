package enrollmentRoutes

import (
	courseController "skillforge/controllers/course"
	"skillforge/middleware"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up enrollment and progression routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/api/enrollments", middleware.JWTMiddleware)

	enrollGroup.Post("/", courseValidator.Enroll(), courseController.EnrollInCourse)
	enrollGroup.Patch("/progress", courseValidator.UpdateProgress(), courseController.UpdateProgress)
	enrollGroup.Get("/my-enrollments", courseController.GetMyEnrollments)
}
