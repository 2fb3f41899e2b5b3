package course

import (
	"encoding/json"
	"time"

	"skillforge/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment binds one user to one course and tracks their progress through
// it. The (user_id, course_id) pair is unique; the index is the backstop for
// concurrent enroll requests.
type Enrollment struct {
	gorm.Model
	UserID        uint           `json:"userId" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID      uint           `json:"courseId" gorm:"uniqueIndex:idx_user_course;not null"`
	Course        *Course        `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	CompletedDays datatypes.JSON `json:"completedDays"` // JSON array of ints, set semantics
	Progress      float64        `json:"progress" gorm:"default:0"` // 0-100
	StartDate     time.Time      `json:"startDate" gorm:"autoCreateTime"`
	CompletedDate *time.Time     `json:"completedDate"`
	IsCompleted   bool           `json:"isCompleted" gorm:"default:false"`
}

// CompletedDayList decodes the completedDays column
func (e *Enrollment) CompletedDayList() []int {
	days := []int{}
	if len(e.CompletedDays) > 0 {
		_ = json.Unmarshal(e.CompletedDays, &days)
	}
	return days
}

// HasCompletedDay reports whether the day is in the completed set
func (e *Enrollment) HasCompletedDay(dayNumber int) bool {
	for _, d := range e.CompletedDayList() {
		if d == dayNumber {
			return true
		}
	}
	return false
}

// AddCompletedDay appends the day with set semantics. Returns true when the
// set changed, false when the day was already present.
func (e *Enrollment) AddCompletedDay(dayNumber int) bool {
	if e.HasCompletedDay(dayNumber) {
		return false
	}
	days := append(e.CompletedDayList(), dayNumber)
	raw, err := json.Marshal(days)
	if err != nil {
		return false
	}
	e.CompletedDays = datatypes.JSON(raw)
	return true
}

// QuizAttempt is an audit record of a quiz submission. Attempts are recorded
// but never gate resubmission; a correct answer re-awards XP each time, as
// the platform always has.
type QuizAttempt struct {
	gorm.Model
	UserID         uint `json:"userId" gorm:"index;not null"`
	CourseID       uint `json:"courseId" gorm:"index;not null"`
	DayNumber      int  `json:"dayNumber" gorm:"not null"`
	SelectedAnswer int  `json:"selectedAnswer"`
	IsCorrect      bool `json:"isCorrect" gorm:"default:false"`
	XPAwarded      int  `json:"xpAwarded" gorm:"default:0"`
}

// Review is a student's rating of a course, one per user per course
type Review struct {
	gorm.Model
	UserID   uint        `json:"userId" gorm:"uniqueIndex:idx_user_course_review;not null"`
	User     models.User `json:"-" gorm:"foreignKey:UserID"`
	CourseID uint        `json:"courseId" gorm:"uniqueIndex:idx_user_course_review;not null"`
	Rating   int         `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment  string      `json:"comment" gorm:"type:text;default:''"`
}
