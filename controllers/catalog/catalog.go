package catalogController

import (
	"ilmhub/database"
	"ilmhub/middleware"
	"ilmhub/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetSectors lists the active sectors in display order. Public.
func GetSectors(c *fiber.Ctx) error {
	var sectors []models.Sector
	if err := database.Database.Db.Where("is_deleted = ? AND is_active = ?", false, true).
		Order("order_index asc").Find(&sectors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sectors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sectors fetched successfully!", sectors)
}

// GetSectorDetail returns a sector with its levels and their courses. Public.
func GetSectorDetail(c *fiber.Ctx) error {
	sectorID, err := strconv.Atoi(c.Params("id"))
	if err != nil || sectorID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid sector ID!", nil)
	}

	var sector models.Sector
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_active = ?", sectorID, false, true).First(&sector).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sector not found!", nil)
	}

	var levels []models.Level
	database.Database.Db.Where("sector_id = ? AND is_deleted = ?", sectorID, false).
		Order("level_number asc").Find(&levels)

	type LevelWithCourses struct {
		models.Level
		Courses []models.Course `json:"courses"`
	}

	result := make([]LevelWithCourses, len(levels))
	for i, level := range levels {
		result[i] = LevelWithCourses{Level: level}

		var courses []models.Course
		database.Database.Db.Where("level_id = ? AND is_deleted = ? AND is_active = ?", level.ID, false, true).
			Order("order_index asc").Find(&courses)
		result[i].Courses = courses
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sector details fetched successfully!", fiber.Map{
		"sector": sector,
		"levels": result,
	})
}
