package models

import "gorm.io/gorm"

// Course references its category by id only; deleting a category is blocked
// while any course still points at it.
type Course struct {
	gorm.Model
	CategoryID   uint   `json:"category_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	Price        int64  `json:"price" gorm:"default:0"` // whole currency units
	Duration     int64  `json:"duration" gorm:"default:0"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
