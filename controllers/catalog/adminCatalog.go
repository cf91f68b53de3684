package catalogController

import (
	"ilmhub/database"
	"ilmhub/middleware"
	"ilmhub/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CreateSector creates a new sector. Admin only (enforced by route).
func CreateSector(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSector").(*struct {
		Code        string `json:"code"`
		Name        string `json:"name"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Sector codes are the public identifiers of specialty tracks
	if err := database.Database.Db.Where("code = ? AND is_deleted = ?", reqData.Code, false).First(&models.Sector{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Sector code already exists!", nil)
	}

	sector := models.Sector{
		Code:        reqData.Code,
		Name:        reqData.Name,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&sector).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sector!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sector created successfully!", sector)
}

// UpdateSector updates sector metadata or toggles its active flag.
func UpdateSector(c *fiber.Ctx) error {
	sectorID, err := strconv.Atoi(c.Params("id"))
	if err != nil || sectorID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid sector ID!", nil)
	}

	var sector models.Sector
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sectorID, false).First(&sector).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sector not found!", nil)
	}

	reqData := new(struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		OrderIndex  *int    `json:"order_index"`
		IsActive    *bool   `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != nil {
		sector.Name = *reqData.Name
	}
	if reqData.Description != nil {
		sector.Description = *reqData.Description
	}
	if reqData.OrderIndex != nil {
		sector.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsActive != nil {
		sector.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&sector).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update sector!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sector updated successfully!", sector)
}

// CreateLevel appends a level to a sector. Level numbers must stay contiguous
// per sector, so the next number is derived, not taken from the request.
func CreateLevel(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLevel").(*struct {
		SectorID uint   `json:"sector_id"`
		Title    string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var sector models.Sector
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.SectorID, false).First(&sector).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sector not found!", nil)
	}

	var maxLevel int
	database.Database.Db.Model(&models.Level{}).Where("sector_id = ? AND is_deleted = ?", reqData.SectorID, false).
		Select("COALESCE(MAX(level_number), 0)").Scan(&maxLevel)

	level := models.Level{
		SectorID:    reqData.SectorID,
		LevelNumber: maxLevel + 1,
		Title:       reqData.Title,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create level!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Level created successfully!", level)
}

// CreateCourse adds a course under a level. The sector reference is copied
// from the level so the denormalized pair can never disagree.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		LevelID     uint   `json:"level_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var level models.Level
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.LevelID, false).First(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found!", nil)
	}

	course := models.Course{
		LevelID:     level.ID,
		SectorID:    level.SectorID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// DeleteCourse soft deletes a course.
func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil || courseID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	course.IsActive = false
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
