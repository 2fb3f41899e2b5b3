package course

import (
	"encoding/json"
	"errors"

	"skillforge/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TotalCourseDays caps the day units per course. The progress percentage is
// also computed against this fixed denominator, matching the original
// behavior even for courses that carry fewer days.
const TotalCourseDays = 5

// Quiz is a single multiple-choice question attached to a day
type Quiz struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // index into Options
	Explanation   string   `json:"explanation,omitempty"`
}

// PDFFile is an attached document reference
type PDFFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Task is a practice item listed under a day
type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// DayContent bundles the learning material of one day
type DayContent struct {
	VideoURL string    `json:"videoUrl,omitempty"`
	Text     string    `json:"text,omitempty"`
	PDFFiles []PDFFile `json:"pdfFiles,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	Tasks    []Task    `json:"tasks,omitempty"`
	Quiz     *Quiz     `json:"quiz,omitempty"`
}

// CourseDay is one ordered unit of a course, 1-indexed
type CourseDay struct {
	DayNumber int        `json:"dayNumber"`
	Title     string     `json:"title"`
	Content   DayContent `json:"content"`
}

// Course is a short multi-day learning course. Days are stored as a JSON
// document on the row, mirroring the document-store shape the catalog uses.
type Course struct {
	gorm.Model
	Title           string         `json:"title" gorm:"not null"`
	Description     string         `json:"description" gorm:"type:text"`
	InstructorID    uint           `json:"instructorId" gorm:"index;not null"`
	Instructor      models.User    `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	CategoryID      uint           `json:"categoryId" gorm:"index"`
	CoverImage      string         `json:"coverImage" gorm:"default:''"`
	Days            datatypes.JSON `json:"days"` // JSON array of CourseDay
	IsPublished     bool           `json:"isPublished" gorm:"default:true"`
	EnrollmentCount int            `json:"enrollmentCount" gorm:"default:0"`
}

// DayList decodes the days column
func (c *Course) DayList() []CourseDay {
	var days []CourseDay
	if len(c.Days) > 0 {
		_ = json.Unmarshal(c.Days, &days)
	}
	return days
}

// SetDays overwrites the days column
func (c *Course) SetDays(days []CourseDay) error {
	raw, err := json.Marshal(days)
	if err != nil {
		return err
	}
	c.Days = datatypes.JSON(raw)
	return nil
}

// FindDay returns the day unit with the given number, or nil
func (c *Course) FindDay(dayNumber int) *CourseDay {
	for _, day := range c.DayList() {
		if day.DayNumber == dayNumber {
			d := day
			return &d
		}
	}
	return nil
}

// BeforeSave enforces the day cap and day-number bounds
func (c *Course) BeforeSave(tx *gorm.DB) error {
	days := c.DayList()
	if len(days) > TotalCourseDays {
		return errors.New("course cannot have more than 5 days")
	}
	for _, day := range days {
		if day.DayNumber < 1 || day.DayNumber > TotalCourseDays {
			return errors.New("day number must be between 1 and 5")
		}
	}
	return nil
}
