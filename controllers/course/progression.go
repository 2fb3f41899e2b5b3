package courseController

import (
	"log"
	"time"

	"skillforge/database"
	"skillforge/models"
	courseModels "skillforge/models/course"
	"skillforge/utils"
)

// canAccessDay enforces the sequential unlock policy: day 1 is open to any
// enrolled user, day N needs day N-1 completed. Completed days never re-lock.
func canAccessDay(enrollment *courseModels.Enrollment, dayNumber int) bool {
	if dayNumber <= 1 {
		return true
	}
	return enrollment.HasCompletedDay(dayNumber - 1)
}

// applyProgress mutates the enrollment for one completion event: set-adds the
// day, recomputes progress and runs the completion transition. XP awards fire
// through the gamification engine; their failures are logged there and never
// block the enrollment update. Returns true when this call completed the
// course.
//
// Progress divides by the fixed 5-day cap rather than the course's actual day
// count, matching the platform's long-standing behavior for shorter courses.
func applyProgress(enrollment *courseModels.Enrollment, dayNumber int, completed bool) bool {
	if completed && enrollment.AddCompletedDay(dayNumber) {
		utils.AwardXP(enrollment.UserID, utils.ActionCompleteDay)
	}

	enrollment.Progress = float64(len(enrollment.CompletedDayList())) / float64(courseModels.TotalCourseDays) * 100

	if enrollment.Progress == 100 && !enrollment.IsCompleted {
		enrollment.IsCompleted = true
		now := time.Now()
		enrollment.CompletedDate = &now

		utils.AwardXP(enrollment.UserID, utils.ActionCompleteCourse)
		utils.GrantBadge(enrollment.UserID, models.BadgeFinisher)
		return true
	}

	return false
}

// syncEnrolledCourseCache pushes the authoritative progress value into the
// denormalized User.enrolledCourses entry. This is a second independent write
// with no transaction around it; failure is logged and the cache heals on the
// next scheduler pass.
func syncEnrolledCourseCache(userID, courseID uint, progress float64) {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		log.Printf("Error syncing enrolled-course cache for user %d: %v", userID, err)
		return
	}

	list := user.EnrolledCourseList()
	for i := range list {
		if list[i].CourseID == courseID {
			list[i].Progress = progress
		}
	}
	user.SetEnrolledCourses(list)

	if err := db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("enrolled_courses", user.EnrolledCourses).Error; err != nil {
		log.Printf("Error syncing enrolled-course cache for user %d: %v", userID, err)
	}
}
