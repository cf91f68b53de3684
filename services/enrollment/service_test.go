package enrollment

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"ilmhub/models"
	enrollModels "ilmhub/models/enrollment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll_CreatesFullCascade(t *testing.T) {
	db := setupTestDB(t)
	sector, level, courses := seedCatalog(t, db)

	result, count, err := Enroll(db, 1, sector.ID, validIntake())
	require.NoError(t, err)

	assert.Equal(t, len(courses), count)
	assert.Equal(t, enrollModels.SectorActive, result.Status)
	assert.Equal(t, level.ID, result.CurrentLevelID)
	assert.NotEmpty(t, result.Reference)
	assert.Equal(t, "grow", result.Motivation)

	var levelEnrollment enrollModels.LevelEnrollment
	require.NoError(t, db.Where("user_id = ? AND level_id = ?", 1, level.ID).First(&levelEnrollment).Error)
	assert.Equal(t, enrollModels.LevelInProgress, levelEnrollment.Status)

	var progressRows []enrollModels.CourseProgress
	require.NoError(t, db.Where("user_id = ?", 1).Find(&progressRows).Error)
	require.Len(t, progressRows, len(courses), "one progress row per active course, inactive ones excluded")
	for _, row := range progressRows {
		assert.Equal(t, enrollModels.CourseNotStarted, row.Status)
		assert.Zero(t, row.ProgressPercentage)
	}
}

func TestEnroll_SecondCallIsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	sector, _, _ := seedCatalog(t, db)

	_, _, err := Enroll(db, 1, sector.ID, validIntake())
	require.NoError(t, err)

	_, _, err = Enroll(db, 1, sector.ID, validIntake())
	assert.ErrorIs(t, err, ErrDuplicateEnrollment)

	var total int64
	db.Model(&enrollModels.SectorEnrollment{}).Where("user_id = ? AND sector_id = ?", 1, sector.ID).Count(&total)
	assert.EqualValues(t, 1, total)
}

func TestEnroll_ValidatesIntakeBeforeAnyWrite(t *testing.T) {
	db := setupTestDB(t)
	sector, _, _ := seedCatalog(t, db)

	cases := []struct {
		name   string
		intake Intake
	}{
		{"empty motivation", Intake{Motivation: "", StudyHoursPerWeek: 5}},
		{"blank motivation", Intake{Motivation: "   ", StudyHoursPerWeek: 5}},
		{"zero hours", Intake{Motivation: "grow", StudyHoursPerWeek: 0}},
		{"negative hours", Intake{Motivation: "grow", StudyHoursPerWeek: -3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Enroll(db, 1, sector.ID, tc.intake)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	var total int64
	db.Model(&enrollModels.SectorEnrollment{}).Count(&total)
	assert.Zero(t, total)
}

func TestEnroll_UnknownSector(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	_, _, err := Enroll(db, 1, 9999, validIntake())
	assert.ErrorIs(t, err, ErrSectorNotFound)
}

func TestEnroll_MissingLevelOneIsCatalogInconsistency(t *testing.T) {
	db := setupTestDB(t)

	sector := models.Sector{Code: "broken", Name: "Broken Sector", IsActive: true}
	require.NoError(t, db.Create(&sector).Error)

	_, _, err := Enroll(db, 1, sector.ID, validIntake())
	var catalogErr *CatalogInconsistencyError
	require.ErrorAs(t, err, &catalogErr)
	assert.Equal(t, sector.ID, catalogErr.SectorID)

	var total int64
	db.Model(&enrollModels.SectorEnrollment{}).Count(&total)
	assert.Zero(t, total, "no transaction may be opened on a broken catalog")
}

func TestEnroll_InactiveLevelOneIsCatalogInconsistency(t *testing.T) {
	db := setupTestDB(t)
	sector, level, _ := seedCatalog(t, db)

	require.NoError(t, db.Model(&models.Level{}).Where("id = ?", level.ID).Update("is_active", false).Error)

	_, _, err := Enroll(db, 1, sector.ID, validIntake())
	var catalogErr *CatalogInconsistencyError
	assert.ErrorAs(t, err, &catalogErr)
}

func TestEnroll_AtomicRollbackOnCourseRowFailure(t *testing.T) {
	db := setupTestDB(t)
	sector, level, courses := seedCatalog(t, db)

	// Pre-seed a progress row for the last course so the final insert of the
	// batch hits the (user_id, course_id) unique constraint mid-transaction.
	last := courses[len(courses)-1]
	require.NoError(t, db.Create(&enrollModels.CourseProgress{
		UserID:   1,
		CourseID: last.ID,
		SectorID: sector.ID,
		LevelID:  level.ID,
		Status:   enrollModels.CourseNotStarted,
	}).Error)

	_, _, err := Enroll(db, 1, sector.ID, validIntake())
	require.Error(t, err)

	var sectorCount, levelCount int64
	db.Model(&enrollModels.SectorEnrollment{}).Where("user_id = ?", 1).Count(&sectorCount)
	db.Model(&enrollModels.LevelEnrollment{}).Where("user_id = ?", 1).Count(&levelCount)
	assert.Zero(t, sectorCount, "no SectorEnrollment may survive a partial failure")
	assert.Zero(t, levelCount, "no LevelEnrollment may survive a partial failure")
}

func TestEnroll_ConcurrentCallsAdmitExactlyOne(t *testing.T) {
	db := setupTestDB(t)
	sector, _, _ := seedCatalog(t, db)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, results[i] = Enroll(db, 1, sector.ID, validIntake())
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		// The loser must fail as a duplicate or a rolled back transaction,
		// never anything that leaves state behind.
		var txErr *TransactionError
		if !errors.Is(err, ErrDuplicateEnrollment) && !errors.As(err, &txErr) {
			t.Fatalf("unexpected loser error: %v", err)
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent enroll may succeed")

	var total int64
	db.Model(&enrollModels.SectorEnrollment{}).Where("user_id = ? AND sector_id = ?", 1, sector.ID).Count(&total)
	assert.EqualValues(t, 1, total)
}

func TestIsEnrolled_DistinguishesTypes(t *testing.T) {
	db := setupTestDB(t)
	sector, _, courses := seedCatalog(t, db)
	sectorID := fmt.Sprintf("%d", sector.ID)

	status, err := IsEnrolled(db, 1, ProgramSector, sectorID)
	require.NoError(t, err)
	assert.False(t, status.Enrolled)

	_, _, err = Enroll(db, 1, sector.ID, validIntake())
	require.NoError(t, err)

	status, err = IsEnrolled(db, 1, ProgramSector, sectorID)
	require.NoError(t, err)
	assert.True(t, status.Enrolled)

	status, err = IsEnrolled(db, 1, ProgramCourse, fmt.Sprintf("%d", courses[0].ID))
	require.NoError(t, err)
	assert.True(t, status.Enrolled)

	status, err = IsEnrolled(db, 1, ProgramSpecialty, "qirat-ilm")
	require.NoError(t, err)
	assert.True(t, status.Enrolled)

	status, err = IsEnrolled(db, 1, ProgramSpecialty, "no-such-track")
	require.NoError(t, err)
	assert.False(t, status.Enrolled)

	_, err = IsEnrolled(db, 1, "bootcamp", sectorID)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestIsEnrolled_RejectsMalformedIDs(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	for _, raw := range []string{"12abc", "abc", "-1", "0", ""} {
		_, err := IsEnrolled(db, 1, ProgramSector, raw)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "id %q", raw)
	}
}

func TestIsEnrolled_WithdrawnDoesNotCount(t *testing.T) {
	db := setupTestDB(t)
	sector, _, _ := seedCatalog(t, db)

	enrollment, _, err := Enroll(db, 1, sector.ID, validIntake())
	require.NoError(t, err)

	require.NoError(t, db.Model(&enrollModels.SectorEnrollment{}).
		Where("id = ?", enrollment.ID).Update("status", enrollModels.SectorWithdrawn).Error)

	status, err := IsEnrolled(db, 1, ProgramSector, fmt.Sprintf("%d", sector.ID))
	require.NoError(t, err)
	assert.False(t, status.Enrolled, "only active enrollments gate admission")
}

func TestLevelOne_ResolvesSeededLevel(t *testing.T) {
	db := setupTestDB(t)
	sector, level, _ := seedCatalog(t, db)

	got, err := LevelOne(db, sector.ID)
	require.NoError(t, err)
	assert.Equal(t, level.ID, got.ID)
	assert.Equal(t, 1, got.LevelNumber)

	courses, err := ActiveCourses(db, level.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 3)
	assert.Equal(t, "Tajweed Basics", courses[0].Title)

	// The archived course must be stored inactive and stay out of the list.
	var archived models.Course
	require.NoError(t, db.Where("title = ?", "Archived Course").First(&archived).Error)
	assert.False(t, archived.IsActive)
	for _, course := range courses {
		assert.NotEqual(t, archived.ID, course.ID)
	}
}

func TestEnroll_DuplicateKeyMapsFromConstraint(t *testing.T) {
	db := setupTestDB(t)
	sector, level, _ := seedCatalog(t, db)

	// Bypass the pre-check by inserting the row directly, then enroll: the
	// unique constraint alone must turn the attempt into a duplicate.
	require.NoError(t, db.Create(&enrollModels.SectorEnrollment{
		Reference:         "manual",
		UserID:            1,
		SectorID:          sector.ID,
		Status:            enrollModels.SectorWithdrawn, // pre-check only sees active
		CurrentLevelID:    level.ID,
		Motivation:        "first run",
		StudyHoursPerWeek: 2,
	}).Error)

	_, _, err := Enroll(db, 1, sector.ID, validIntake())
	assert.ErrorIs(t, err, ErrDuplicateEnrollment)
}
