package userRoutes

import (
	authController "skillforge/controllers/auth"
	userController "skillforge/controllers/userControllers"
	"skillforge/middleware"
	"skillforge/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and leaderboard routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	// Leaderboard is public
	userGroup.Get("/leaderboard", userController.GetLeaderboard)

	userGroup.Get("/me", middleware.JWTMiddleware, authController.GetMe)
	userGroup.Patch("/me", middleware.JWTMiddleware, userValidator.UpdateProfile(), userController.UpdateProfile)
}
