package uploadRoutes

import (
	uploadController "skillforge/controllers/upload"
	"skillforge/middleware"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
)

// SetupUploadRoutes sets up the media upload route
func SetupUploadRoutes(app *fiber.App) {
	app.Post("/api/upload",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin),
		uploadController.UploadFile)
}
