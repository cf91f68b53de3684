package enrollment

import (
	"errors"
	"fmt"
	"ilmhub/models"

	"gorm.io/gorm"
)

// LevelOne resolves level 1 of a sector. An unknown or inactive sector is a
// caller error (ErrSectorNotFound); a known active sector missing its level 1
// is a reference-data defect (CatalogInconsistencyError).
func LevelOne(db *gorm.DB, sectorID uint) (*models.Level, error) {
	var sector models.Sector
	if err := db.Where("id = ? AND is_deleted = ? AND is_active = ?", sectorID, false, true).First(&sector).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectorNotFound
		}
		return nil, fmt.Errorf("sector lookup failed: %w", err)
	}

	var level models.Level
	err := db.Where("sector_id = ? AND level_number = ? AND is_deleted = ?", sectorID, 1, false).First(&level).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &CatalogInconsistencyError{SectorID: sectorID, Detail: "no level 1"}
		}
		return nil, fmt.Errorf("level lookup failed: %w", err)
	}
	if !level.IsActive {
		return nil, &CatalogInconsistencyError{SectorID: sectorID, Detail: "level 1 is inactive"}
	}

	return &level, nil
}

// ActiveCourses lists the active courses under a level in display order.
func ActiveCourses(db *gorm.DB, levelID uint) ([]models.Course, error) {
	var courses []models.Course
	err := db.Where("level_id = ? AND is_deleted = ? AND is_active = ?", levelID, false, true).
		Order("order_index asc").Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("course lookup failed: %w", err)
	}
	return courses, nil
}
