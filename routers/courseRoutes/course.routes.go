package courseRoutes

import (
	courseController "skillforge/controllers/course"
	"skillforge/middleware"
	"skillforge/models"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog and review routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Catalog browsing (published courses only)
	courseGroup.Get("/", courseController.GetAllCourses)

	// Instructor routes must register before the :id wildcard
	courseGroup.Get("/instructor/my-courses",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin),
		courseController.GetInstructorCourses)

	courseGroup.Post("/",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin),
		courseValidator.CreateCourse(),
		courseController.CreateCourse)

	courseGroup.Get("/:id", courseValidator.CourseID(), courseController.GetCourseByID)

	courseGroup.Put("/:id",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin),
		courseValidator.CourseID(),
		courseValidator.UpdateCourse(),
		courseController.UpdateCourse)

	courseGroup.Delete("/:id",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin),
		courseValidator.CourseID(),
		courseController.DeleteCourse)

	// Reviews
	courseGroup.Get("/:id/reviews", courseValidator.CourseID(), courseController.GetCourseReviews)
	courseGroup.Post("/:id/reviews",
		middleware.JWTMiddleware,
		courseValidator.CourseID(),
		courseValidator.SubmitReview(),
		courseController.SubmitReview)
}
