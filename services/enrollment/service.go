package enrollment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	enrollModels "ilmhub/models/enrollment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Intake is the learner-supplied context captured at enrollment time.
type Intake struct {
	Motivation        string `json:"motivation" validate:"required,min=1"`
	StudyHoursPerWeek int    `json:"study_hours_per_week" validate:"required,gt=0"`
	PreviousKnowledge string `json:"previous_knowledge,omitempty"`
}

func (i Intake) validate() error {
	if strings.TrimSpace(i.Motivation) == "" {
		return &ValidationError{Field: "motivation", Reason: "must not be empty"}
	}
	if i.StudyHoursPerWeek <= 0 {
		return &ValidationError{Field: "study_hours_per_week", Reason: "must be positive"}
	}
	return nil
}

// Enroll admits a learner into a sector: admission gate, level-1 resolution,
// then one transaction creating the SectorEnrollment, its LevelEnrollment and
// one CourseProgress row per active course of level 1, in that order. Either
// all three land or none do; a learner must never observe a SectorEnrollment
// without its child rows. Returns the committed enrollment and the number of
// courses enrolled.
func Enroll(db *gorm.DB, userID, sectorID uint, intake Intake) (*enrollModels.SectorEnrollment, int, error) {
	if err := intake.validate(); err != nil {
		return nil, 0, err
	}

	// Admission gate. A failed lookup is a failed lookup, not a green light.
	status, err := IsEnrolled(db, userID, ProgramSector, fmt.Sprintf("%d", sectorID))
	if err != nil {
		return nil, 0, err
	}
	if status.Enrolled {
		return nil, 0, ErrDuplicateEnrollment
	}

	level, err := LevelOne(db, sectorID)
	if err != nil {
		return nil, 0, err
	}

	courses, err := ActiveCourses(db, level.ID)
	if err != nil {
		return nil, 0, err
	}

	intakeMeta, err := json.Marshal(intake)
	if err != nil {
		return nil, 0, fmt.Errorf("intake encoding failed: %w", err)
	}

	sectorEnrollment := &enrollModels.SectorEnrollment{
		Reference:         uuid.NewString(),
		UserID:            userID,
		SectorID:          sectorID,
		Status:            enrollModels.SectorActive,
		CurrentLevelID:    level.ID,
		EnrolledAt:        time.Now(),
		Motivation:        intake.Motivation,
		StudyHoursPerWeek: intake.StudyHoursPerWeek,
		Intake:            intakeMeta,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sectorEnrollment).Error; err != nil {
			return err
		}

		levelEnrollment := &enrollModels.LevelEnrollment{
			UserID:   userID,
			SectorID: sectorID,
			LevelID:  level.ID,
			Status:   enrollModels.LevelInProgress,
		}
		if err := tx.Create(levelEnrollment).Error; err != nil {
			return err
		}

		for _, course := range courses {
			progress := enrollModels.CourseProgress{
				UserID:   userID,
				CourseID: course.ID,
				SectorID: sectorID,
				LevelID:  level.ID,
				Status:   enrollModels.CourseNotStarted,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		// The unique index on (user_id, sector_id) catches the race the
		// pre-check cannot: the losing concurrent transaction lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, 0, ErrDuplicateEnrollment
		}
		return nil, 0, &TransactionError{Err: err}
	}

	return sectorEnrollment, len(courses), nil
}
