package courseController

import (
	"log"

	"skillforge/database"
	"skillforge/middleware"
	courseModels "skillforge/models/course"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDayContent serves a single day's learning unit, gated by the sequential
// unlock policy
func GetDayContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID := c.Locals("courseID").(uint)
	currentDay := c.Locals("dayNumber").(int)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "You must be enrolled to access this content")
	}

	var course courseModels.Course
	if err := db.Preload("Instructor").Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	dayContent := course.FindDay(currentDay)
	if dayContent == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Day content not found")
	}

	// Sequential access check
	if !canAccessDay(&enrollment, currentDay) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Complete the previous day first")
	}

	completedDays := enrollment.CompletedDayList()

	return c.JSON(fiber.Map{
		"course": fiber.Map{
			"id":    course.ID,
			"title": course.Title,
			"instructor": fiber.Map{
				"name":   course.Instructor.Name,
				"avatar": course.Instructor.Avatar,
			},
		},
		"dayContent": dayContent,
		"userProgress": fiber.Map{
			"completedDays":         completedDays,
			"progress":              enrollment.Progress,
			"isCurrentDayCompleted": enrollment.HasCompletedDay(currentDay),
		},
	})
}

// SubmitQuiz scores a quiz answer by exact index match. A correct answer
// awards PASS_QUIZ XP every time it is submitted; there is no already-passed
// guard, only an audit trail of attempts.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID := c.Locals("courseID").(uint)
	dayNumber := c.Locals("dayNumber").(int)

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		SelectedAnswer int `json:"selectedAnswer"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "You must be enrolled to submit quiz answers")
	}

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	dayContent := course.FindDay(dayNumber)
	if dayContent == nil || dayContent.Content.Quiz == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Quiz not found")
	}

	quiz := dayContent.Content.Quiz
	isCorrect := quiz.CorrectAnswer == reqData.SelectedAnswer

	xpAwarded := 0
	if isCorrect {
		utils.AwardXP(userID, utils.ActionPassQuiz)
		xpAwarded = 5
	}

	attempt := courseModels.QuizAttempt{
		UserID:         userID,
		CourseID:       courseID,
		DayNumber:      dayNumber,
		SelectedAnswer: reqData.SelectedAnswer,
		IsCorrect:      isCorrect,
		XPAwarded:      xpAwarded,
	}
	if err := db.Create(&attempt).Error; err != nil {
		log.Printf("Error recording quiz attempt: %v", err)
	}

	var explanation interface{}
	if quiz.Explanation != "" {
		explanation = quiz.Explanation
	}

	return c.JSON(fiber.Map{
		"correct":       isCorrect,
		"correctAnswer": quiz.CorrectAnswer,
		"explanation":   explanation,
		"xpAwarded":     xpAwarded,
	})
}
