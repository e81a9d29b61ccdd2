package models

import "gorm.io/gorm"

// Category is one node of the two-level classification tree. Top-level
// categories have a nil ParentID; subcategories point at a top-level parent.
// Nesting deeper than one level is rejected at creation time.
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"index;not null"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id" gorm:"index"`
	IsDeleted   bool   `gorm:"default:false"`
}
