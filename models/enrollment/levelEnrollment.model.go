package enrollment

import (
	"time"

	"gorm.io/gorm"
)

// Level enrollment statuses.
const (
	LevelInProgress = "in_progress"
	LevelCompleted  = "completed"
)

// LevelEnrollment is created only as a side effect of a SectorEnrollment,
// and only for the level that enrollment's current_level points at.
type LevelEnrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_level;not null"`
	SectorID    uint       `json:"sector_id" gorm:"index;not null"`
	LevelID     uint       `json:"level_id" gorm:"uniqueIndex:idx_user_level;not null"`
	Status      string     `json:"status" gorm:"default:'in_progress'"` // in_progress, completed
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
