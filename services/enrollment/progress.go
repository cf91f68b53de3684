package enrollment

import (
	"errors"
	"fmt"

	enrollModels "ilmhub/models/enrollment"

	"gorm.io/gorm"
)

// PassMark is the minimum component score that counts as a pass.
const PassMark = 50.0

// statusForPercentage derives the course status from the percentage. Status
// is never stored independently of the percentage it is derived from.
func statusForPercentage(p float64) string {
	switch {
	case p >= 100:
		return enrollModels.CourseCompleted
	case p > 0:
		return enrollModels.CourseInProgress
	default:
		return enrollModels.CourseNotStarted
	}
}

// UpdateCourseProgress overwrites the learner's percentage for a course and
// recomputes the status in the same write. Last writer wins; there is no
// merge logic. Out-of-range percentages are rejected, not clamped.
func UpdateCourseProgress(db *gorm.DB, userID, courseID uint, percentage float64) (*enrollModels.CourseProgress, error) {
	if percentage < 0 || percentage > 100 {
		return nil, &ValidationError{Field: "percentage", Reason: "must be between 0 and 100"}
	}

	var progress enrollModels.CourseProgress
	err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, fmt.Errorf("progress lookup failed: %w", err)
	}

	progress.ProgressPercentage = percentage
	progress.Status = statusForPercentage(percentage)

	err = db.Model(&progress).Updates(map[string]interface{}{
		"progress_percentage": progress.ProgressPercentage,
		"status":              progress.Status,
	}).Error
	if err != nil {
		return nil, &TransactionError{Err: err}
	}

	return &progress, nil
}

// Scores carries the component scores a mentor records for a course. Nil
// fields are left untouched.
type Scores struct {
	Test       *float64 `json:"test_score"`
	Mid        *float64 `json:"mid_score"`
	Assignment *float64 `json:"assignment_score"`
	Final      *float64 `json:"final_score"`
}

// RecordComponentScores stores graded component scores and their pass flags.
// It never touches percentage or status; those belong to the learner's own
// progress reports.
func RecordComponentScores(db *gorm.DB, userID, courseID uint, scores Scores) (*enrollModels.CourseProgress, error) {
	updates := map[string]interface{}{}
	for field, score := range map[string]*float64{
		"test": scores.Test, "mid": scores.Mid, "assignment": scores.Assignment, "final": scores.Final,
	} {
		if score == nil {
			continue
		}
		if *score < 0 || *score > 100 {
			return nil, &ValidationError{Field: field + "_score", Reason: "must be between 0 and 100"}
		}
		updates[field+"_score"] = *score
		updates[field+"_passed"] = *score >= PassMark
	}
	if len(updates) == 0 {
		return nil, &ValidationError{Field: "scores", Reason: "at least one score is required"}
	}

	var progress enrollModels.CourseProgress
	err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, fmt.Errorf("progress lookup failed: %w", err)
	}

	if err := db.Model(&progress).Updates(updates).Error; err != nil {
		return nil, &TransactionError{Err: err}
	}

	// Re-read so the caller sees the stored row, not the partial struct.
	if err := db.First(&progress, progress.ID).Error; err != nil {
		return nil, fmt.Errorf("progress reload failed: %w", err)
	}
	return &progress, nil
}

// Summary is the sector-level rollup of a learner's course progress.
type Summary struct {
	TotalCourses      int     `json:"total_courses"`
	CompletedCourses  int     `json:"completed_courses"`
	InProgressCourses int     `json:"in_progress_courses"`
	AverageProgress   float64 `json:"average_progress"`
}

// Summarize aggregates the learner's CourseProgress rows under a sector.
// Pure read. AverageProgress is 0 when there are no rows.
func Summarize(db *gorm.DB, userID, sectorID uint) (*Summary, error) {
	var rows []enrollModels.CourseProgress
	err := db.Where("user_id = ? AND sector_id = ? AND is_deleted = ?", userID, sectorID, false).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("progress aggregation failed: %w", err)
	}

	summary := &Summary{TotalCourses: len(rows)}
	total := float64(0)
	for _, row := range rows {
		total += row.ProgressPercentage
		switch row.Status {
		case enrollModels.CourseCompleted:
			summary.CompletedCourses++
		case enrollModels.CourseInProgress:
			summary.InProgressCourses++
		}
	}
	if len(rows) > 0 {
		summary.AverageProgress = total / float64(len(rows))
	}

	return summary, nil
}
