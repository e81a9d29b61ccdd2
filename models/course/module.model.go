package course

import "gorm.io/gorm"

// Module is a top-level section of a course syllabus. SerialNumber is an
// admin-assigned display ordering hint, not a unique key; siblings sharing a
// serial number keep their insertion order.
type Module struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	SerialNumber int    `json:"serial_number" gorm:"default:0"`
	Title        string `json:"title"`
	IsDeleted    bool   `gorm:"default:false"`
}
