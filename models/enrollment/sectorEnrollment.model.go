package enrollment

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sector enrollment statuses.
const (
	SectorActive    = "active"
	SectorCompleted = "completed"
	SectorWithdrawn = "withdrawn"
)

// SectorEnrollment is a learner's standing in a sector. The composite unique
// index on (user_id, sector_id) is the race defense for concurrent enroll
// calls: the losing transaction fails with a duplicate-key error.
type SectorEnrollment struct {
	gorm.Model
	Reference         string         `json:"reference" gorm:"size:36;index"`
	UserID            uint           `json:"user_id" gorm:"uniqueIndex:idx_user_sector;not null"`
	SectorID          uint           `json:"sector_id" gorm:"uniqueIndex:idx_user_sector;not null"`
	Status            string         `json:"status" gorm:"default:'active'"` // active, completed, withdrawn
	CurrentLevelID    uint           `json:"current_level_id" gorm:"not null"`
	EnrolledAt        time.Time      `json:"enrolled_at"`
	Motivation        string         `json:"motivation" gorm:"type:text;not null"`
	StudyHoursPerWeek int            `json:"study_hours_per_week" gorm:"not null"`
	Intake            datatypes.JSON `json:"intake,omitempty"` // raw intake metadata incl. previous knowledge
	CompletedAt       *time.Time     `json:"completed_at"`
	IsDeleted         bool           `gorm:"default:false"`
}
