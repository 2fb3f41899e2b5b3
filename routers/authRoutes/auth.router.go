package authRoutes

import (
	authController "skillforge/controllers/auth"
	"skillforge/middleware"
	authValidator "skillforge/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and session routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, authController.GetMe)
}
