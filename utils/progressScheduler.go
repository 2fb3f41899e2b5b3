package utils

import (
	"log"
	"time"

	"skillforge/database"
	"skillforge/models"
	courseModels "skillforge/models/course"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcileEnrolledCourseCaches rebuilds every user's denormalized
// enrolledCourses cache from the authoritative Enrollment rows. Progress
// updates write the cache best-effort with no transaction, so the two can
// drift; this pass heals whatever drifted since the last run.
func ReconcileEnrolledCourseCaches() {
	db := database.Database.Db

	var users []models.User
	if err := db.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		logScheduler("Error fetching users: " + err.Error())
		return
	}

	reconciled := 0
	for _, user := range users {
		var enrollments []courseModels.Enrollment
		if err := db.Where("user_id = ?", user.ID).Order("created_at asc").Find(&enrollments).Error; err != nil {
			logScheduler("Error fetching enrollments: " + err.Error())
			continue
		}

		cache := make([]models.EnrolledCourse, 0, len(enrollments))
		for _, e := range enrollments {
			cache = append(cache, models.EnrolledCourse{CourseID: e.CourseID, Progress: e.Progress})
		}

		user.SetEnrolledCourses(cache)
		if err := db.Model(&models.User{}).Where("id = ?", user.ID).
			UpdateColumn("enrolled_courses", user.EnrolledCourses).Error; err != nil {
			logScheduler("Error updating cache: " + err.Error())
			continue
		}
		reconciled++
	}

	log.Printf("[PROGRESS-SCHEDULER] reconciled caches for %d users", reconciled)
}

// InitProgressScheduler starts the hourly cache reconciliation job
func InitProgressScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 * * * *", ReconcileEnrolledCourseCaches); err != nil {
		log.Printf("Failed to register progress scheduler: %v", err)
		return
	}

	c.Start()
	logScheduler("Hourly enrolled-course cache reconciliation scheduled")
}
