package utils

import (
	"testing"

	"skillforge/database"
	"skillforge/models"
	courseModels "skillforge/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileEnrolledCourseCaches(t *testing.T) {
	database.ConnectTestDb()
	db := database.Database.Db

	user := newTestUser(t, 0)

	// Authoritative enrollment at 60%, cache stale at 20%
	enrollment := courseModels.Enrollment{UserID: user.ID, CourseID: 3, Progress: 60}
	require.NoError(t, db.Create(&enrollment).Error)

	user.SetEnrolledCourses([]models.EnrolledCourse{{CourseID: 3, Progress: 20}})
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		UpdateColumn("enrolled_courses", user.EnrolledCourses).Error)

	ReconcileEnrolledCourseCaches()

	list := reloadUser(t, user.ID).EnrolledCourseList()
	require.Len(t, list, 1)
	assert.Equal(t, uint(3), list[0].CourseID)
	assert.Equal(t, 60.0, list[0].Progress)
}
