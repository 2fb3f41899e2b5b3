package courseController

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"skillforge/database"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDayContentRequiresEnrollment(t *testing.T) {
	app := setupTestApp(t)
	instructor, _ := createTestUser(t, "teacher", models.RoleInstructor)
	_, token := createTestUser(t, "student", models.RoleStudent)
	course := createTestCourse(t, instructor.ID, 5)

	resp, result := doJSON(t, app, "GET", fmt.Sprintf("/api/content/%d/day/1", course.ID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "You must be enrolled to access this content", result["error"])
}

func TestGetDayContentDayOneOpen(t *testing.T) {
	app := setupTestApp(t)
	instructor, _ := createTestUser(t, "teacher", models.RoleInstructor)
	_, token := createTestUser(t, "student", models.RoleStudent)
	course := createTestCourse(t, instructor.ID, 5)

	doJSON(t, app, "POST", "/api/enrollments", token, fiber.Map{"courseId": course.ID})

	resp, result := doJSON(t, app, "GET", fmt.Sprintf("/api/content/%d/day/1", course.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	dayContent := result["dayContent"].(map[string]interface{})
	assert.Equal(t, float64(1), dayContent["dayNumber"])

	userProgress := result["userProgress"].(map[string]interface{})
	assert.Equal(t, false, userProgress["isCurrentDayCompleted"])
	assert.Equal(t, float64(0), userProgress["progress"])
}

func TestGetDayContentLockedAhead(t *testing.T) {
	app := setupTestApp(t)
	instructor, _ := createTestUser(t, "teacher", models.RoleInstructor)
	_, token := createTestUser(t, "student", models.RoleStudent)
	course := createTestCourse(t, instructor.ID, 5)

	doJSON(t, app, "POST", "/api/enrollments", token, fiber.Map{"courseId": course.ID})
	doJSON(t, app, "PATCH", "/api/enrollments/progress", token,
		fiber.Map{"courseId": course.ID, "dayNumber": 1, "completed": true})

	// Day 2 unlocks after day 1
	resp, _ := doJSON(t, app, "GET", fmt.Sprintf("/api/content/%d/day/2", course.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Day 3 stays locked with only day 1 done
	resp, result := doJSON(t, app, "GET", fmt.Sprintf("/api/content/%d/day/3", course.ID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Complete the previous day first", result["error"])
}

func TestGetDayContentMissingDay(t *testing.T) {
	app := setupTestApp(t)
	instructor, _ := createTestUser(t, "teacher", models.RoleInstructor)
	_, token := createTestUser(t, "student", models.RoleStudent)
	course := createTestCourse(t, instructor.ID, 3)

	doJSON(t, app, "POST", "/api/enrollments", token, fiber.Map{"courseId": course.ID})

	resp, result := doJSON(t, app, "GET", fmt.Sprintf("/api/content/%d/day/4", course.ID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Day content not found", result["error"])
}

func TestGetDayContentMissingCourse(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "student", models.RoleStudent)

	resp, _ := doJSON(t, app, "GET", "/api/content/99999/day/1", token, nil)
	// No enrollment can exist for a missing course
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSubmitQuizCorrectAnswer(t *testing.T) {
	app := setupTestApp(t)
	instructor, _ := createTestUser(t, "teacher", models.RoleInstructor)
	student, token := createTestUser(t, "student", models.RoleStudent)
	course := createTestCourse(t, instructor.ID, 5)

	doJSON(t, app, "POST", "/api/enrollments", token, fiber.Map{"courseId": course.ID})

	resp, result := doJSON(t, app, "POST", fmt.Sprintf("/api/content/%d/day/1/quiz", course.ID), token,
		fiber.Map{"selectedAnswer": 1})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, result["correct"])
	assert.Equal(t, float64(1), result["correctAnswer"])
	assert.Equal(t, "The second option is correct", result["explanation"])
	assert.Equal(t, float64(5), result["xpAwarded"])

	assert.Equal(t, 5, reloadTestUser(t, student.ID).XP)
}

func TestSubmitQuizWrongAnswer(t *testing.T) {
	app := setupTestApp(t)
	instructor, _ := createTestUser(t, "teacher", models.RoleInstructor)
	student, token := createTestUser(t, "student", models.RoleStudent)
	course := createTestCourse(t, instructor.ID, 5)

	doJSON(t, app, "POST", "/api/enrollments", token, fiber.Map{"courseId": course.ID})

	resp, result := doJSON(t, app, "POST", fmt.Sprintf("/api/content/%d/day/1/quiz", course.ID), token,
		fiber.Map{"selectedAnswer": 2})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, result["correct"])
	assert.Equal(t, float64(1), result["correctAnswer"])
	assert.Equal(t, float64(0), result["xpAwarded"])

	assert.Equal(t, 0, reloadTestUser(t, student.ID).XP)
}

func TestSubmitQuizReawardsOnRepeat(t *testing.T) {
	app := setupTestApp(t)
	instructor, _ := createTestUser(t, "teacher", models.RoleInstructor)
	student, token := createTestUser(t, "student", models.RoleStudent)
	course := createTestCourse(t, instructor.ID, 5)

	doJSON(t, app, "POST", "/api/enrollments", token, fiber.Map{"courseId": course.ID})

	// No already-answered guard exists: each correct submission pays out
	doJSON(t, app, "POST", fmt.Sprintf("/api/content/%d/day/1/quiz", course.ID), token, fiber.Map{"selectedAnswer": 1})
	doJSON(t, app, "POST", fmt.Sprintf("/api/content/%d/day/1/quiz", course.ID), token, fiber.Map{"selectedAnswer": 1})

	assert.Equal(t, 10, reloadTestUser(t, student.ID).XP)
}

func TestSubmitQuizRequiresQuiz(t *testing.T) {
	app := setupTestApp(t)
	instructor, _ := createTestUser(t, "teacher", models.RoleInstructor)
	_, token := createTestUser(t, "student", models.RoleStudent)

	// Build a course whose day 1 has no quiz
	course := createTestCourse(t, instructor.ID, 1)
	days := course.DayList()
	days[0].Content.Quiz = nil
	require.NoError(t, course.SetDays(days))
	require.NoError(t, database.Database.Db.Save(course).Error)

	doJSON(t, app, "POST", "/api/enrollments", token, fiber.Map{"courseId": course.ID})

	resp, result := doJSON(t, app, "POST", fmt.Sprintf("/api/content/%d/day/1/quiz", course.ID), token,
		fiber.Map{"selectedAnswer": 0})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Quiz not found", result["error"])
}

func TestSubmitReviewFlow(t *testing.T) {
	app := setupTestApp(t)
	instructor, _ := createTestUser(t, "teacher", models.RoleInstructor)
	student, token := createTestUser(t, "student", models.RoleStudent)
	course := createTestCourse(t, instructor.ID, 5)

	doJSON(t, app, "POST", "/api/enrollments", token, fiber.Map{"courseId": course.ID})

	resp, _ := doJSON(t, app, "POST", fmt.Sprintf("/api/courses/%d/reviews", course.ID), token,
		fiber.Map{"rating": 5, "comment": "Great course"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Reviewer gets SUBMIT_REVIEW, instructor gets RECEIVE_POSITIVE_REVIEW
	assert.Equal(t, 3, reloadTestUser(t, student.ID).XP)
	assert.Equal(t, 2, reloadTestUser(t, instructor.ID).XP)

	// One review per user per course
	resp, result := doJSON(t, app, "POST", fmt.Sprintf("/api/courses/%d/reviews", course.ID), token,
		fiber.Map{"rating": 4, "comment": "Again"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "You have already reviewed this course", result["error"])

	// Public listing includes the reviewer name
	req := httptest.NewRequest("GET", fmt.Sprintf("/api/courses/%d/reviews", course.ID), nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, listResp.StatusCode)

	raw, _ := io.ReadAll(listResp.Body)
	var reviews []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, student.Name, reviews[0]["userName"])
}
