package enrollment

import (
	"errors"
	"fmt"
	"ilmhub/models"
	enrollModels "ilmhub/models/enrollment"
	"strconv"

	"gorm.io/gorm"
)

// Program types the status query understands.
const (
	ProgramSector    = "sector"
	ProgramCourse    = "course"
	ProgramSpecialty = "specialty" // a sector addressed by its code
)

// Status is the answer to "is this learner enrolled in this program".
type Status struct {
	Enrolled   bool        `json:"enrolled"`
	Enrollment interface{} `json:"enrollment,omitempty"`
}

// IsEnrolled reports whether the learner holds an active enrollment in the
// given program. Read-only. A backend failure comes back as a non-nil error,
// never as "not enrolled". The orchestrator uses this as its admission gate
// and must not admit on a failed lookup.
func IsEnrolled(db *gorm.DB, userID uint, programType, programID string) (*Status, error) {
	switch programType {
	case ProgramSector:
		id, err := parseID(programID)
		if err != nil {
			return nil, err
		}
		return sectorStatus(db, userID, id)

	case ProgramSpecialty:
		var sector models.Sector
		err := db.Where("code = ? AND is_deleted = ?", programID, false).First(&sector).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &Status{Enrolled: false}, nil
			}
			return nil, fmt.Errorf("specialty lookup failed: %w", err)
		}
		return sectorStatus(db, userID, sector.ID)

	case ProgramCourse:
		id, err := parseID(programID)
		if err != nil {
			return nil, err
		}
		var progress enrollModels.CourseProgress
		err = db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, id, false).First(&progress).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &Status{Enrolled: false}, nil
			}
			return nil, fmt.Errorf("course status lookup failed: %w", err)
		}
		return &Status{Enrolled: true, Enrollment: progress}, nil

	default:
		return nil, &ValidationError{Field: "type", Reason: "unknown program type"}
	}
}

func sectorStatus(db *gorm.DB, userID, sectorID uint) (*Status, error) {
	var enrollment enrollModels.SectorEnrollment
	err := db.Where("user_id = ? AND sector_id = ? AND status = ? AND is_deleted = ?",
		userID, sectorID, enrollModels.SectorActive, false).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Status{Enrolled: false}, nil
		}
		return nil, fmt.Errorf("sector status lookup failed: %w", err)
	}
	return &Status{Enrolled: true, Enrollment: enrollment}, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, &ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	return uint(id), nil
}
