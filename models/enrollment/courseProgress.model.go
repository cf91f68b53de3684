package enrollment

import "gorm.io/gorm"

// Course progress statuses. Status is a pure function of the percentage:
// 0 is not_started, 100 and above is completed, everything between is
// in_progress. Every write that changes the percentage recomputes it.
const (
	CourseNotStarted = "not_started"
	CourseInProgress = "in_progress"
	CourseCompleted  = "completed"
)

// CourseProgress tracks a learner's standing in one course. Updates are
// idempotent on (user_id, course_id): each write overwrites percentage and
// status, nothing is appended.
type CourseProgress struct {
	gorm.Model
	UserID             uint     `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID           uint     `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	SectorID           uint     `json:"sector_id" gorm:"index;not null"`
	LevelID            uint     `json:"level_id" gorm:"index;not null"`
	Status             string   `json:"status" gorm:"default:'not_started'"` // not_started, in_progress, completed
	ProgressPercentage float64  `json:"progress_percentage" gorm:"default:0"` // 0-100
	TestScore          *float64 `json:"test_score"`
	MidScore           *float64 `json:"mid_score"`
	AssignmentScore    *float64 `json:"assignment_score"`
	FinalScore         *float64 `json:"final_score"`
	TestPassed         bool     `json:"test_passed" gorm:"default:false"`
	MidPassed          bool     `json:"mid_passed" gorm:"default:false"`
	AssignmentPassed   bool     `json:"assignment_passed" gorm:"default:false"`
	FinalPassed        bool     `json:"final_passed" gorm:"default:false"`
	IsDeleted          bool     `gorm:"default:false"`
}
