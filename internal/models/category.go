package models

import "gorm.io/gorm"

// Category classifies places (e.g., "Park", "Museum").
type Category struct {
	gorm.Model
	Name string `gorm:"size:100;uniqueIndex;not null"`
}
