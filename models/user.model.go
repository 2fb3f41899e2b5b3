package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnrolledCourse is the denormalized per-course progress entry cached on the
// user record. The Enrollment row stays authoritative; this cache is refreshed
// best-effort and may drift between writes.
type EnrolledCourse struct {
	CourseID uint    `json:"courseId"`
	Progress float64 `json:"progress"`
}

type User struct {
	gorm.Model
	Name            string         `json:"name" gorm:"default:''"`
	Email           string         `json:"email" gorm:"unique;not null"`
	Password        string         `json:"-" gorm:"not null"`
	Role            Role           `json:"role" gorm:"default:'student'"` // student, instructor, admin
	Avatar          string         `json:"avatar" gorm:"default:''"`
	Bio             string         `json:"bio" gorm:"default:''"`
	XP              int            `json:"xp" gorm:"column:xp;default:0"`
	Badges          datatypes.JSON `json:"badges"`          // JSON array of badge names
	EnrolledCourses datatypes.JSON `json:"enrolledCourses"` // JSON array of EnrolledCourse
	IsDeleted       bool           `json:"-" gorm:"default:false"`
}

// BadgeList decodes the badges column. An empty column yields an empty slice.
func (u *User) BadgeList() []string {
	badges := []string{}
	if len(u.Badges) > 0 {
		_ = json.Unmarshal(u.Badges, &badges)
	}
	return badges
}

// HasBadge reports whether the user already holds the badge
func (u *User) HasBadge(b Badge) bool {
	for _, name := range u.BadgeList() {
		if name == string(b) {
			return true
		}
	}
	return false
}

// AddBadge appends the badge if absent. Returns true when the set changed.
func (u *User) AddBadge(b Badge) bool {
	if u.HasBadge(b) {
		return false
	}
	badges := append(u.BadgeList(), string(b))
	raw, err := json.Marshal(badges)
	if err != nil {
		return false
	}
	u.Badges = datatypes.JSON(raw)
	return true
}

// EnrolledCourseList decodes the enrolledCourses cache column
func (u *User) EnrolledCourseList() []EnrolledCourse {
	list := []EnrolledCourse{}
	if len(u.EnrolledCourses) > 0 {
		_ = json.Unmarshal(u.EnrolledCourses, &list)
	}
	return list
}

// SetEnrolledCourses overwrites the enrolledCourses cache column
func (u *User) SetEnrolledCourses(list []EnrolledCourse) {
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	u.EnrolledCourses = datatypes.JSON(raw)
}
