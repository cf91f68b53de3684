package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginTracking records one row per successful sign-in, used by the
// admin dashboard and for auditing blocked accounts.
type LoginTracking struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index"`
	IPAddress string    `json:"ip_address"`
	Device    string    `json:"device"`
	Timestamp time.Time `json:"timestamp"`
	IsDeleted bool      `gorm:"default:false"`
}
