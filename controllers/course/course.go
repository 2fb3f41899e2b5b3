package courseController

import (
	"encoding/json"
	"log"

	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	courseModels "skillforge/models/course"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
)

// daySummary is the day listing shape without the actual content, used for
// the public catalog so locked material never leaks through the listing
type daySummary struct {
	DayNumber int    `json:"dayNumber"`
	Title     string `json:"title"`
}

type courseSummary struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	CategoryID      uint         `json:"categoryId"`
	CoverImage      string       `json:"coverImage"`
	Instructor      fiber.Map    `json:"instructor"`
	Days            []daySummary `json:"days"`
	EnrollmentCount int          `json:"enrollmentCount"`
}

func summarize(course courseModels.Course) courseSummary {
	days := course.DayList()
	summaries := make([]daySummary, 0, len(days))
	for _, d := range days {
		summaries = append(summaries, daySummary{DayNumber: d.DayNumber, Title: d.Title})
	}
	return courseSummary{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		CategoryID:      course.CategoryID,
		CoverImage:      course.CoverImage,
		Instructor:      fiber.Map{"id": course.InstructorID, "name": course.Instructor.Name},
		Days:            summaries,
		EnrollmentCount: course.EnrollmentCount,
	}
}

// GetAllCourses lists published courses with search/category filters
func GetAllCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_published = ?", true)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		db = db.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if categoryID := c.QueryInt("category", 0); categoryID > 0 {
		db = db.Where("category_id = ?", categoryID)
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Preload("Instructor").Offset(offset).Limit(limit).
		Order("created_at desc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	summaries := make([]courseSummary, 0, len(courses))
	for _, course := range courses {
		summaries = append(summaries, summarize(course))
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return c.JSON(fiber.Map{
		"courses":     summaries,
		"totalPages":  totalPages,
		"currentPage": page,
		"total":       total,
	})
}

// GetCourseByID returns the full course record
func GetCourseByID(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Preload("Instructor").Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	return c.JSON(course)
}

// GetInstructorCourses lists the caller's own courses, newest first
func GetInstructorCourses(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var courses []courseModels.Course
	if err := database.Database.Db.Where("instructor_id = ?", userID).
		Order("created_at desc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching instructor courses: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	return c.JSON(courses)
}

// CreateCourse adds a new course owned by the caller. Days may arrive as a
// JSON string (multipart form) or array (JSON body); the cover image is
// delegated to the media host.
func CreateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		CategoryID  uint   `json:"category" form:"category"`
		Days        string `json:"days" form:"days"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		CategoryID:   reqData.CategoryID,
		InstructorID: userID,
	}

	if reqData.Days != "" {
		var days []courseModels.CourseDay
		if err := json.Unmarshal([]byte(reqData.Days), &days); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid days payload")
		}
		if len(days) > courseModels.TotalCourseDays {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course cannot have more than 5 days")
		}
		if err := course.SetDays(days); err != nil {
			return middleware.ServerErrorResponse(c, err)
		}
	}

	if file, err := c.FormFile("coverImage"); err == nil {
		result, err := utils.UploadMedia(file, "course_images")
		if err != nil {
			log.Printf("Error uploading cover image: %v", err)
			return middleware.ServerErrorResponse(c, err)
		}
		course.CoverImage = result.URL
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	database.Database.Db.Preload("Instructor").First(&course, course.ID)
	return c.Status(fiber.StatusCreated).JSON(course)
}

// UpdateCourse edits a course; only the owning instructor or an admin may
func UpdateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(models.Role)
	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	if course.InstructorID != userID && !middleware.HasRole(role, models.RoleAdmin) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Not authorized")
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		CategoryID  uint   `json:"category" form:"category"`
		Days        string `json:"days" form:"days"`
		IsPublished *bool  `json:"isPublished" form:"isPublished"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.CategoryID != 0 {
		course.CategoryID = reqData.CategoryID
	}
	if reqData.Days != "" {
		var days []courseModels.CourseDay
		if err := json.Unmarshal([]byte(reqData.Days), &days); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid days payload")
		}
		if len(days) > courseModels.TotalCourseDays {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course cannot have more than 5 days")
		}
		if err := course.SetDays(days); err != nil {
			return middleware.ServerErrorResponse(c, err)
		}
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if file, err := c.FormFile("coverImage"); err == nil {
		result, err := utils.UploadMedia(file, "course_images")
		if err != nil {
			log.Printf("Error uploading cover image: %v", err)
			return middleware.ServerErrorResponse(c, err)
		}
		course.CoverImage = result.URL
	}

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	db.Preload("Instructor").First(&course, course.ID)
	return c.JSON(course)
}

// DeleteCourse hard-deletes a course. Enrollments referencing it are left in
// place; there is no cascade.
func DeleteCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(models.Role)
	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	if course.InstructorID != userID && !middleware.HasRole(role, models.RoleAdmin) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Not authorized")
	}

	if err := db.Unscoped().Delete(&course).Error; err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.ServerErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Course deleted"})
}
