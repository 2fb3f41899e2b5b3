package categoryController

import (
	"log"

	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories lists all categories sorted by name
func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Order("name asc").Find(&categories).Error; err != nil {
		log.Printf("Error fetching categories: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	return c.JSON(categories)
}

// CreateCategory adds a new category with a unique name
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*struct {
		Name string `json:"name"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Name is required")
	}

	db := database.Database.Db

	var existing models.Category
	if err := db.Where("name = ?", reqData.Name).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Category already exists")
	}

	category := models.Category{Name: reqData.Name}
	if err := db.Create(&category).Error; err != nil {
		log.Printf("Error creating category: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// DeleteCategory removes a category. Courses keep their category reference;
// dangling references are tolerated.
func DeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(uint)

	db := database.Database.Db

	var category models.Category
	if err := db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Category not found")
	}

	if err := db.Unscoped().Delete(&category).Error; err != nil {
		log.Printf("Error deleting category: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Category deleted"})
}
