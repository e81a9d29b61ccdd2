package models

import (
	"time"

	"gorm.io/gorm"
)

// DiscountToken is a time-boxed percentage price override. The set of eligible
// courses lives in DiscountTokenCourse rows; at most one active, unexpired
// token may be attached to a course at a time.
type DiscountToken struct {
	gorm.Model
	Token              string    `json:"token" gorm:"unique;not null"`
	DiscountPercentage int       `json:"discount_percentage" gorm:"not null"` // 0-100
	ExpiresAt          time.Time `json:"expires_at"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	IsDeleted          bool      `gorm:"default:false"`
}

// DiscountTokenCourse links a token to one eligible course.
type DiscountTokenCourse struct {
	gorm.Model
	DiscountTokenID uint `json:"discount_token_id" gorm:"index;not null"`
	CourseID        uint `json:"course_id" gorm:"index;not null"`
	IsDeleted       bool `gorm:"default:false"`
}
