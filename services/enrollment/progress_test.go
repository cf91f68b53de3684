package enrollment

import (
	"testing"

	enrollModels "ilmhub/models/enrollment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCourseProgress_DerivationInvariant(t *testing.T) {
	db := setupTestDB(t)
	sector, _, courses := seedCatalog(t, db)

	_, _, err := Enroll(db, 1, sector.ID, validIntake())
	require.NoError(t, err)

	courseID := courses[0].ID
	cases := []struct {
		percentage float64
		status     string
	}{
		{0, enrollModels.CourseNotStarted},
		{1, enrollModels.CourseInProgress},
		{50, enrollModels.CourseInProgress},
		{99, enrollModels.CourseInProgress},
		{100, enrollModels.CourseCompleted},
	}
	for _, tc := range cases {
		row, err := UpdateCourseProgress(db, 1, courseID, tc.percentage)
		require.NoError(t, err)
		assert.Equal(t, tc.status, row.Status, "percentage %v", tc.percentage)
		assert.Equal(t, tc.percentage, row.ProgressPercentage)

		// The stored row must agree with the returned one.
		var stored enrollModels.CourseProgress
		require.NoError(t, db.Where("user_id = ? AND course_id = ?", 1, courseID).First(&stored).Error)
		assert.Equal(t, tc.status, stored.Status)
		assert.Equal(t, tc.percentage, stored.ProgressPercentage)
	}
}

func TestUpdateCourseProgress_RejectsOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	sector, _, courses := seedCatalog(t, db)

	_, _, err := Enroll(db, 1, sector.ID, validIntake())
	require.NoError(t, err)

	for _, percentage := range []float64{150, -1, 100.5} {
		_, err := UpdateCourseProgress(db, 1, courses[0].ID, percentage)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "percentage %v", percentage)
	}

	var stored enrollModels.CourseProgress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 1, courses[0].ID).First(&stored).Error)
	assert.Equal(t, enrollModels.CourseNotStarted, stored.Status, "rejected input must not touch the row")
}

func TestUpdateCourseProgress_RequiresOwnedRow(t *testing.T) {
	db := setupTestDB(t)
	_, _, courses := seedCatalog(t, db)

	_, err := UpdateCourseProgress(db, 1, courses[0].ID, 40)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestUpdateCourseProgress_LastWriterWins(t *testing.T) {
	db := setupTestDB(t)
	sector, _, courses := seedCatalog(t, db)

	_, _, err := Enroll(db, 1, sector.ID, validIntake())
	require.NoError(t, err)

	_, err = UpdateCourseProgress(db, 1, courses[0].ID, 80)
	require.NoError(t, err)
	row, err := UpdateCourseProgress(db, 1, courses[0].ID, 20)
	require.NoError(t, err)

	assert.Equal(t, 20.0, row.ProgressPercentage, "updates overwrite, they do not merge")
	assert.Equal(t, enrollModels.CourseInProgress, row.Status)

	var total int64
	db.Model(&enrollModels.CourseProgress{}).Where("user_id = ? AND course_id = ?", 1, courses[0].ID).Count(&total)
	assert.EqualValues(t, 1, total, "updates overwrite, they do not append")
}

func TestRecordComponentScores(t *testing.T) {
	db := setupTestDB(t)
	sector, _, courses := seedCatalog(t, db)

	_, _, err := Enroll(db, 1, sector.ID, validIntake())
	require.NoError(t, err)

	test := 72.0
	final := 45.0
	row, err := RecordComponentScores(db, 1, courses[0].ID, Scores{Test: &test, Final: &final})
	require.NoError(t, err)

	require.NotNil(t, row.TestScore)
	assert.Equal(t, 72.0, *row.TestScore)
	assert.True(t, row.TestPassed)
	require.NotNil(t, row.FinalScore)
	assert.Equal(t, 45.0, *row.FinalScore)
	assert.False(t, row.FinalPassed)
	assert.Nil(t, row.MidScore, "unsubmitted components stay untouched")
	assert.Equal(t, enrollModels.CourseNotStarted, row.Status, "grading never changes derived status")

	bad := 130.0
	_, err = RecordComponentScores(db, 1, courses[0].ID, Scores{Mid: &bad})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = RecordComponentScores(db, 1, courses[0].ID, Scores{})
	assert.ErrorAs(t, err, &validationErr)
}

func TestSummarize(t *testing.T) {
	db := setupTestDB(t)
	sector, _, courses := seedCatalog(t, db)

	_, _, err := Enroll(db, 1, sector.ID, validIntake())
	require.NoError(t, err)

	_, err = UpdateCourseProgress(db, 1, courses[0].ID, 100)
	require.NoError(t, err)
	_, err = UpdateCourseProgress(db, 1, courses[1].ID, 50)
	require.NoError(t, err)

	summary, err := Summarize(db, 1, sector.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalCourses)
	assert.Equal(t, 1, summary.CompletedCourses)
	assert.Equal(t, 1, summary.InProgressCourses)
	assert.InDelta(t, 50.0, summary.AverageProgress, 0.001)
}

func TestSummarize_NoCoursesIsZeroNotNaN(t *testing.T) {
	db := setupTestDB(t)
	sector, _, _ := seedCatalog(t, db)

	summary, err := Summarize(db, 42, sector.ID)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalCourses)
	assert.Zero(t, summary.AverageProgress)
}
