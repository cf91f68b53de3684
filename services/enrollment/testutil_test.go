package enrollment

import (
	"fmt"
	"testing"

	"ilmhub/models"
	enrollModels "ilmhub/models/enrollment"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory sqlite database with the same
// TranslateError behavior as the postgres connection, so unique-constraint
// violations surface as gorm.ErrDuplicatedKey here too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// sqlite handles one writer at a time; cap the pool so concurrent
	// transactions queue instead of failing with a busy error.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Sector{},
		&models.Level{},
		&models.Course{},
		&enrollModels.SectorEnrollment{},
		&enrollModels.LevelEnrollment{},
		&enrollModels.CourseProgress{},
	))

	return db
}

// seedCatalog creates the "qirat-ilm" sector with a level 1 carrying three
// active courses, plus one inactive course that must never be enrolled.
func seedCatalog(t *testing.T, db *gorm.DB) (models.Sector, models.Level, []models.Course) {
	t.Helper()

	sector := models.Sector{Code: "qirat-ilm", Name: "Qirat & Ilm", IsActive: true}
	require.NoError(t, db.Create(&sector).Error)

	level := models.Level{SectorID: sector.ID, LevelNumber: 1, Title: "Foundations", IsActive: true}
	require.NoError(t, db.Create(&level).Error)

	courses := []models.Course{
		{LevelID: level.ID, SectorID: sector.ID, Title: "Tajweed Basics", OrderIndex: 1, IsActive: true},
		{LevelID: level.ID, SectorID: sector.ID, Title: "Arabic Script", OrderIndex: 2, IsActive: true},
		{LevelID: level.ID, SectorID: sector.ID, Title: "Seerah Introduction", OrderIndex: 3, IsActive: true},
	}
	for i := range courses {
		require.NoError(t, db.Create(&courses[i]).Error)
	}

	// is_active defaults to true, so a zero-value false would be dropped on
	// Create; flip the flag with an explicit update instead.
	inactive := models.Course{LevelID: level.ID, SectorID: sector.ID, Title: "Archived Course"}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)

	return sector, level, courses
}

func validIntake() Intake {
	return Intake{Motivation: "grow", StudyHoursPerWeek: 5}
}
