package adminController

import (
	"ilmhub/database"
	"ilmhub/middleware"
	"ilmhub/models"
	enrollModels "ilmhub/models/enrollment"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns the admin overview: learner counts, per-sector
// enrollment and completion numbers, and the most recent enrollments.
func GetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "STUDENT", false).Count(&totalStudents)

	var totalEnrollments int64
	db.Model(&enrollModels.SectorEnrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	type SectorStats struct {
		SectorID   uint   `json:"sector_id"`
		SectorName string `json:"sector_name"`
		Active     int64  `json:"active"`
		Completed  int64  `json:"completed"`
		Withdrawn  int64  `json:"withdrawn"`
	}

	var sectors []models.Sector
	db.Where("is_deleted = ?", false).Order("order_index asc").Find(&sectors)

	stats := make([]SectorStats, len(sectors))
	for i, sector := range sectors {
		stats[i] = SectorStats{SectorID: sector.ID, SectorName: sector.Name}

		db.Model(&enrollModels.SectorEnrollment{}).
			Where("sector_id = ? AND status = ? AND is_deleted = ?", sector.ID, enrollModels.SectorActive, false).
			Count(&stats[i].Active)
		db.Model(&enrollModels.SectorEnrollment{}).
			Where("sector_id = ? AND status = ? AND is_deleted = ?", sector.ID, enrollModels.SectorCompleted, false).
			Count(&stats[i].Completed)
		db.Model(&enrollModels.SectorEnrollment{}).
			Where("sector_id = ? AND status = ? AND is_deleted = ?", sector.ID, enrollModels.SectorWithdrawn, false).
			Count(&stats[i].Withdrawn)
	}

	var recent []enrollModels.SectorEnrollment
	db.Where("is_deleted = ?", false).Order("created_at desc").Limit(5).Find(&recent)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_students":     totalStudents,
		"total_enrollments":  totalEnrollments,
		"sector_stats":       stats,
		"recent_enrollments": recent,
	})
}
