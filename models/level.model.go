package models

import "gorm.io/gorm"

// Level is an ordered stage within a sector. LevelNumber is 1-based and
// contiguous within a sector; every active sector must have a level 1.
type Level struct {
	gorm.Model
	SectorID    uint   `json:"sector_id" gorm:"uniqueIndex:idx_sector_level;not null"`
	LevelNumber int    `json:"level_number" gorm:"uniqueIndex:idx_sector_level;not null"`
	Title       string `json:"title"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
