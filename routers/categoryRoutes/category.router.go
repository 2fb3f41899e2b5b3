package categoryRoutes

import (
	categoryController "skillforge/controllers/category"
	categoryValidator "skillforge/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up category routes
func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/api/categories")

	categoryGroup.Get("/", categoryController.GetCategories)
	categoryGroup.Post("/", categoryValidator.CreateCategory(), categoryController.CreateCategory)
	categoryGroup.Delete("/:id", categoryValidator.CategoryID(), categoryController.DeleteCategory)
}
