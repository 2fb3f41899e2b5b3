package userController

import (
	"log"

	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard returns the top 10 users by XP. Public endpoint.
func GetLeaderboard(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("xp desc").Limit(10).Find(&users).Error; err != nil {
		log.Printf("Error fetching leaderboard: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	leaderboard := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		leaderboard = append(leaderboard, fiber.Map{
			"name":   u.Name,
			"xp":     u.XP,
			"badges": u.BadgeList(),
			"avatar": u.Avatar,
		})
	}

	return c.JSON(leaderboard)
}

// UpdateProfile edits the caller's name/bio and optionally swaps the avatar
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name string `json:"name" form:"name"`
		Bio  string `json:"bio" form:"bio"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Bio != "" {
		user.Bio = reqData.Bio
	}

	if file, err := c.FormFile("avatar"); err == nil {
		result, err := utils.UploadMedia(file, "avatars")
		if err != nil {
			log.Printf("Error uploading avatar: %v", err)
			return middleware.ServerErrorResponse(c, err)
		}
		user.Avatar = result.URL
	}

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"role":   user.Role,
		"avatar": user.Avatar,
		"bio":    user.Bio,
		"xp":     user.XP,
		"badges": user.BadgeList(),
	})
}
