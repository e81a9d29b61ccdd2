package course

import "gorm.io/gorm"

// Topic sits under a module; same serial-number ordering contract as Module.
type Topic struct {
	gorm.Model
	ModuleID     uint   `json:"module_id" gorm:"index;not null"`
	SerialNumber int    `json:"serial_number" gorm:"default:0"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	IsDeleted    bool   `gorm:"default:false"`
}
