package authController

import (
	"log"

	"skillforge/config"
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account. Role defaults to student; instructor/admin
// may be requested at registration, matching the original platform.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User already exists with this email")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	role := models.RoleStudent
	if reqData.Role != "" {
		role = models.Role(reqData.Role)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	// Welcome email is fire-and-forget; registration succeeds regardless
	utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
	})
}

// Login verifies credentials and issues a bearer token
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":     user.ID,
			"name":   user.Name,
			"email":  user.Email,
			"role":   user.Role,
			"xp":     user.XP,
			"badges": user.BadgeList(),
		},
	})
}

// GetMe returns the authenticated user's profile with their enrolled-course
// summaries resolved against the catalog
func GetMe(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(fiber.Map{
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"role":            user.Role,
		"avatar":          user.Avatar,
		"bio":             user.Bio,
		"xp":              user.XP,
		"badges":          user.BadgeList(),
		"enrolledCourses": user.EnrolledCourseList(),
		"createdAt":       user.CreatedAt,
	})
}
