package models

import "gorm.io/gorm"

// Sector is a top-level subject track (e.g. "Qirat & Ilm").
// Reference data maintained by admins; the enrollment flow never mutates it.
type Sector struct {
	gorm.Model
	Code        string `json:"code" gorm:"size:100;uniqueIndex;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
