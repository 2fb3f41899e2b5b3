package courseController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillforge/config"
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	courseModels "skillforge/models/course"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// setupTestApp wires a fiber app against a fresh in-memory database with the
// same middleware chain the routers install
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()

	app.Post("/api/enrollments", middleware.JWTMiddleware, courseValidator.Enroll(), EnrollInCourse)
	app.Patch("/api/enrollments/progress", middleware.JWTMiddleware, courseValidator.UpdateProgress(), UpdateProgress)
	app.Get("/api/enrollments/my-enrollments", middleware.JWTMiddleware, GetMyEnrollments)

	app.Get("/api/content/:courseId/day/:dayNumber", middleware.JWTMiddleware, courseValidator.DayParams(), GetDayContent)
	app.Post("/api/content/:courseId/day/:dayNumber/quiz", middleware.JWTMiddleware, courseValidator.DayParams(), courseValidator.SubmitQuiz(), SubmitQuiz)

	app.Post("/api/courses/:id/reviews", middleware.JWTMiddleware, courseValidator.CourseID(), courseValidator.SubmitReview(), SubmitReview)
	app.Get("/api/courses/:id/reviews", courseValidator.CourseID(), GetCourseReviews)

	return app
}

func createTestUser(t *testing.T, name string, role models.Role) (*models.User, string) {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    name + "-" + t.Name() + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)
	return &user, token
}

// createTestCourse builds a published course with the given number of days,
// each carrying a one-question quiz whose correct answer index is 1
func createTestCourse(t *testing.T, instructorID uint, dayCount int) *courseModels.Course {
	t.Helper()
	days := make([]courseModels.CourseDay, 0, dayCount)
	for i := 1; i <= dayCount; i++ {
		days = append(days, courseModels.CourseDay{
			DayNumber: i,
			Title:     "Day title",
			Content: courseModels.DayContent{
				Text: "Lesson text",
				Quiz: &courseModels.Quiz{
					Question:      "Pick the second option",
					Options:       []string{"first", "second", "third"},
					CorrectAnswer: 1,
					Explanation:   "The second option is correct",
				},
			},
		})
	}

	course := courseModels.Course{
		Title:        "Test Course",
		Description:  "A short course",
		InstructorID: instructorID,
		IsPublished:  true,
	}
	require.NoError(t, course.SetDays(days))
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return &course
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &result)
	}
	return resp, result
}

func doRawGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func reloadTestUser(t *testing.T, id uint) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, database.Database.Db.First(&user, id).Error)
	return &user
}

func reloadEnrollment(t *testing.T, userID, courseID uint) *courseModels.Enrollment {
	t.Helper()
	var e courseModels.Enrollment
	require.NoError(t, database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&e).Error)
	return &e
}
