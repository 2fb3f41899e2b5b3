package main

import (
	"log"

	"skillforge/config"
	"skillforge/database"
	authRoutes "skillforge/routers/authRoutes"
	categoryRoutes "skillforge/routers/categoryRoutes"
	contentRoutes "skillforge/routers/contentRoutes"
	courseRoutes "skillforge/routers/courseRoutes"
	enrollmentRoutes "skillforge/routers/enrollmentRoutes"
	uploadRoutes "skillforge/routers/uploadRoutes"
	userRoutes "skillforge/routers/userRoutes"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Locally stored uploads (used when no media host is configured)
	app.Static("/uploads", "./uploads")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	uploadRoutes.SetupUploadRoutes(app)

	// Heals drift between Enrollment rows and the user-side progress cache
	utils.InitProgressScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
