package utils

import (
	"ilmhub/database"
	"ilmhub/models"
	enrollModels "ilmhub/models/enrollment"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeProgressScheduler sets up the nightly completion reconciler
func InitializeProgressScheduler() *cron.Cron {
	logScheduler("Initializing progress scheduler...")

	c := cron.New()

	// Run daily at 2 AM
	c.AddFunc("0 2 * * *", func() {
		logScheduler("Running nightly completion reconciliation...")
		ReconcileCompletions()
		DetectCatalogDefects()
	})

	c.Start()
	logScheduler("Progress scheduler started - runs daily at 2 AM")
	return c
}

// ReconcileCompletions promotes level and sector enrollments whose underlying
// course progress is fully completed. Creation stays with the enrollment
// transaction; this job only moves already-earned completion state forward.
func ReconcileCompletions() {
	db := database.Database.Db
	now := time.Now()

	var levelEnrollments []enrollModels.LevelEnrollment
	if err := db.Where("status = ? AND is_deleted = ?", enrollModels.LevelInProgress, false).
		Find(&levelEnrollments).Error; err != nil {
		logScheduler("Error fetching level enrollments: " + err.Error())
		return
	}

	for _, le := range levelEnrollments {
		var total, completed int64
		db.Model(&enrollModels.CourseProgress{}).
			Where("user_id = ? AND level_id = ? AND is_deleted = ?", le.UserID, le.LevelID, false).
			Count(&total)
		db.Model(&enrollModels.CourseProgress{}).
			Where("user_id = ? AND level_id = ? AND status = ? AND is_deleted = ?", le.UserID, le.LevelID, enrollModels.CourseCompleted, false).
			Count(&completed)

		if total == 0 || completed < total {
			continue
		}

		le.Status = enrollModels.LevelCompleted
		le.CompletedAt = &now
		if err := db.Save(&le).Error; err != nil {
			logScheduler("Error completing level enrollment: " + err.Error())
			continue
		}
		logScheduler("Level enrollment completed")

		// A completed final level completes the sector enrollment.
		var next models.Level
		err := db.Joins("JOIN levels current ON current.sector_id = levels.sector_id").
			Where("current.id = ? AND levels.level_number = current.level_number + 1 AND levels.is_deleted = ?", le.LevelID, false).
			First(&next).Error
		if err == nil {
			continue
		}

		if err := db.Model(&enrollModels.SectorEnrollment{}).
			Where("user_id = ? AND sector_id = ? AND status = ? AND is_deleted = ?", le.UserID, le.SectorID, enrollModels.SectorActive, false).
			Updates(map[string]interface{}{"status": enrollModels.SectorCompleted, "completed_at": now}).Error; err != nil {
			logScheduler("Error completing sector enrollment: " + err.Error())
		}
	}

	logScheduler("Nightly completion reconciliation finished")
}

// DetectCatalogDefects reports active sectors missing their level 1 and
// courses whose denormalized sector disagrees with their level. Reference
// data is never repaired automatically; this is an operator alert.
func DetectCatalogDefects() {
	db := database.Database.Db

	var brokenSectors []models.Sector
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Where("id NOT IN (?)", db.Model(&models.Level{}).Select("sector_id").
			Where("level_number = ? AND is_deleted = ?", 1, false)).
		Find(&brokenSectors).Error; err != nil {
		logScheduler("Error scanning sectors: " + err.Error())
		return
	}
	for _, sector := range brokenSectors {
		logScheduler("ALERT: active sector without level 1: " + sector.Code)
	}

	var mismatched []models.Course
	if err := db.Joins("JOIN levels ON levels.id = courses.level_id").
		Where("courses.sector_id <> levels.sector_id AND courses.is_deleted = ?", false).
		Find(&mismatched).Error; err != nil {
		logScheduler("Error scanning courses: " + err.Error())
		return
	}
	for _, course := range mismatched {
		logScheduler("ALERT: course sector disagrees with its level: " + course.Title)
	}
}
