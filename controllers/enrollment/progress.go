package enrollmentController

import (
	"errors"
	"ilmhub/database"
	"ilmhub/middleware"
	"ilmhub/models"
	enrollService "ilmhub/services/enrollment"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress overwrites the caller's progress percentage for a course;
// the course status is recomputed in the same write.
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProgressUpdate").(*struct {
		CourseID   uint     `json:"course_id"`
		Percentage *float64 `json:"percentage"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	progress, err := enrollService.UpdateCourseProgress(database.Database.Db, userID, reqData.CourseID, *reqData.Percentage)
	if err != nil {
		var validationErr *enrollService.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, validationErr.Error(), nil)
		case errors.Is(err, enrollService.ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
		default:
			log.Printf("Progress update failed (user %d, course %d): %v", userID, reqData.CourseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", progress)
}

// GetSummary aggregates the caller's course progress under a sector.
func GetSummary(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectorID, err := strconv.Atoi(c.Query("sector_id"))
	if err != nil || sectorID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid sector ID!", nil)
	}

	summary, err := enrollService.Summarize(database.Database.Db, userID, uint(sectorID))
	if err != nil {
		log.Printf("Progress summary failed (user %d, sector %d): %v", userID, sectorID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress summary!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress summary fetched successfully!", summary)
}

// RecordScores lets a mentor store graded component scores for a student's
// course. Derived status and percentage stay untouched.
func RecordScores(c *fiber.Ctx) error {
	mentorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedScoreUpdate").(*struct {
		UserID          uint     `json:"user_id"`
		CourseID        uint     `json:"course_id"`
		TestScore       *float64 `json:"test_score"`
		MidScore        *float64 `json:"mid_score"`
		AssignmentScore *float64 `json:"assignment_score"`
		FinalScore      *float64 `json:"final_score"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	scores := enrollService.Scores{
		Test:       reqData.TestScore,
		Mid:        reqData.MidScore,
		Assignment: reqData.AssignmentScore,
		Final:      reqData.FinalScore,
	}

	progress, err := enrollService.RecordComponentScores(database.Database.Db, reqData.UserID, reqData.CourseID, scores)
	if err != nil {
		var validationErr *enrollService.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, validationErr.Error(), nil)
		case errors.Is(err, enrollService.ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student is not enrolled in this course!", nil)
		default:
			log.Printf("Score update failed (mentor %d, user %d, course %d): %v", mentorID, reqData.UserID, reqData.CourseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record scores!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scores recorded successfully!", progress)
}
