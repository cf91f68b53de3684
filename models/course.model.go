package models

import "gorm.io/gorm"

// Course is a unit of study belonging to exactly one level. SectorID is
// denormalized for query convenience and must agree with the level's sector.
type Course struct {
	gorm.Model
	LevelID     uint   `json:"level_id" gorm:"index;not null"`
	SectorID    uint   `json:"sector_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
