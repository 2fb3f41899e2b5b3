package courseController

import (
	"log"

	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	courseModels "skillforge/models/course"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse creates the unique (user, course) enrollment record
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required")
	}

	db := database.Database.Db

	// Course must exist and be visible
	var course courseModels.Course
	if err := db.Where("id = ? AND is_published = ?", courseID, true).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found or not published")
	}

	// Check if user is already enrolled
	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Already enrolled in this course")
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		// A concurrent enroll for the same pair loses on the unique index
		if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "Already enrolled in this course")
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	if err := db.Model(&courseModels.Course{}).Where("id = ?", courseID).
		UpdateColumn("enrollment_count", gorm.Expr("enrollment_count + 1")).Error; err != nil {
		log.Printf("Error incrementing enrollment count: %v", err)
	}

	// Append the denormalized cache entry and hand out First Steps on the
	// user's first-ever enrollment
	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err == nil {
		list := append(user.EnrolledCourseList(), models.EnrolledCourse{CourseID: courseID, Progress: 0})
		user.SetEnrolledCourses(list)
		if err := db.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("enrolled_courses", user.EnrolledCourses).Error; err != nil {
			log.Printf("Error updating enrolled-course cache: %v", err)
		}

		if len(list) == 1 {
			utils.GrantBadge(userID, models.BadgeFirstSteps)
		}
	}

	enrollment.Course = &course
	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// UpdateProgress records a day-completion event and recomputes derived state
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		CourseID  uint `json:"courseId"`
		DayNumber int  `json:"dayNumber"`
		Completed bool `json:"completed"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found")
	}

	courseCompleted := applyProgress(&enrollment, reqData.DayNumber, reqData.Completed)

	if err := db.Save(&enrollment).Error; err != nil {
		log.Printf("Error saving enrollment: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	// Best-effort second write; the authoritative value already landed above
	syncEnrolledCourseCache(userID, reqData.CourseID, enrollment.Progress)

	if courseCompleted {
		var user models.User
		var course courseModels.Course
		if db.First(&user, userID).Error == nil && db.First(&course, reqData.CourseID).Error == nil {
			utils.SendCourseCompletedEmail(user.Email, user.Name, course.Title)
		}
	}

	return c.JSON(enrollment)
}

// GetMyEnrollments lists the caller's enrollments, newest first, with the
// course summary attached
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).
		Preload("Course").
		Preload("Course.Instructor").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	return c.JSON(enrollments)
}
