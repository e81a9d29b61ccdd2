package course

import "gorm.io/gorm"

// Content type tags.
const (
	ContentVideo = "VIDEO"
	ContentPDF   = "PDF"
	ContentExcel = "EXCEL"
	ContentText  = "TEXT"
	ContentImage = "IMAGE"
)

// Content is the leaf of the course tree. Name must not contain a period (the
// period separates the extension inside the storage key). Key is the opaque
// storage locator, assigned once at creation and never reassigned; only Name
// is editable afterwards.
type Content struct {
	gorm.Model
	TopicID   uint   `json:"topic_id" gorm:"index;not null"`
	Name      string `json:"name"`
	Type      string `json:"type" gorm:"default:'TEXT'"` // VIDEO, PDF, EXCEL, TEXT, IMAGE
	Key       string `json:"key" gorm:"not null"`
	IsDeleted bool   `gorm:"default:false"`
}
