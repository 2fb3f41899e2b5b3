package models

import "gorm.io/gorm"

// Category groups courses by topic. Deleting a category does not touch the
// courses referencing it; dangling references are tolerated.
type Category struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`
}
