package courseController

import (
	"log"

	"skillforge/database"
	"skillforge/middleware"
	courseModels "skillforge/models/course"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview lets an enrolled user rate a course once. The reviewer earns
// SUBMIT_REVIEW XP; a rating of 4+ also credits the instructor.
func SubmitReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "You must be enrolled to review this course")
	}

	var existing courseModels.Review
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "You have already reviewed this course")
	}

	review := courseModels.Review{
		UserID:   userID,
		CourseID: courseID,
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error creating review: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	utils.AwardXP(userID, utils.ActionSubmitReview)
	if reqData.Rating >= 4 {
		utils.AwardXP(course.InstructorID, utils.ActionReceivePositiveReview)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetCourseReviews lists a course's reviews, newest first
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var reviews []courseModels.Review
	if err := database.Database.Db.Where("course_id = ?", courseID).
		Preload("User").
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		log.Printf("Error fetching reviews: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	type reviewResponse struct {
		courseModels.Review
		UserName string `json:"userName"`
	}

	response := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, reviewResponse{Review: r, UserName: r.User.Name})
	}

	return c.JSON(response)
}
