package enrollmentController

import (
	"errors"
	"ilmhub/database"
	"ilmhub/middleware"
	"ilmhub/models"
	enrollModels "ilmhub/models/enrollment"
	enrollService "ilmhub/services/enrollment"
	"ilmhub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// EnrollRequest is the enrollment intake payload.
type EnrollRequest struct {
	SectorID          uint   `json:"sector_id" validate:"required,gt=0"`
	Motivation        string `json:"motivation" validate:"required"`
	StudyHoursPerWeek int    `json:"study_hours_per_week" validate:"required,gt=0"`
	PreviousKnowledge string `json:"previous_knowledge"`
}

// EnrollInSector admits the caller into a sector and cascades the enrollment
// into level 1 and its courses. Success is only reported after the commit.
func EnrollInSector(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Retrieve validated enrollment request
	reqData, ok := c.Locals("validatedEnrollRequest").(*EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	intake := enrollService.Intake{
		Motivation:        reqData.Motivation,
		StudyHoursPerWeek: reqData.StudyHoursPerWeek,
		PreviousKnowledge: reqData.PreviousKnowledge,
	}

	enrollment, coursesEnrolled, err := enrollService.Enroll(database.Database.Db, userID, reqData.SectorID, intake)
	if err != nil {
		var validationErr *enrollService.ValidationError
		var catalogErr *enrollService.CatalogInconsistencyError
		var txErr *enrollService.TransactionError
		switch {
		case errors.As(err, &validationErr):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, validationErr.Error(), nil)
		case errors.Is(err, enrollService.ErrDuplicateEnrollment):
			// Kept as 400 for compatibility with existing clients.
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in this sector!", nil)
		case errors.Is(err, enrollService.ErrSectorNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sector not found or not active!", nil)
		case errors.As(err, &catalogErr):
			// Reference data is broken, not the caller. Operator follow-up needed.
			log.Printf("ALERT: catalog inconsistency during enroll (user %d): %v", userID, catalogErr)
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sector catalog is unavailable, please contact support!", nil)
		case errors.As(err, &txErr):
			log.Printf("Enrollment transaction failed (user %d, sector %d): %v", userID, reqData.SectorID, txErr)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll, please try again!", nil)
		default:
			log.Printf("Enrollment failed (user %d, sector %d): %v", userID, reqData.SectorID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll, please try again!", nil)
		}
	}

	// Confirmation email and notification event are fire-and-forget; the
	// enrollment is already committed.
	go utils.SendEnrollmentConfirmation(user.Email, user.Name, enrollment.Reference, coursesEnrolled)
	go utils.NotifyEnrollment(user.ID, enrollment.SectorID, enrollment.Reference)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in sector successfully!", fiber.Map{
		"enrollment":       enrollment,
		"courses_enrolled": coursesEnrolled,
	})
}

// EnrollmentStatus answers "is the caller enrolled in this program". Always
// 200; anonymous callers simply get enrolled=false instead of an error.
func EnrollmentStatus(c *fiber.Ctx) error {
	caller, ok := c.Locals("caller").(middleware.Caller)
	if !ok || caller.Anonymous {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched.", enrollService.Status{Enrolled: false})
	}

	programType := c.Query("type")
	programID := c.Query("id")

	status, err := enrollService.IsEnrolled(database.Database.Db, caller.ID, programType, programID)
	if err != nil {
		var validationErr *enrollService.ValidationError
		if errors.As(err, &validationErr) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, validationErr.Error(), nil)
		}
		log.Printf("Enrollment status lookup failed (user %d): %v", caller.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched.", status)
}

// GetMyEnrollments lists the caller's sector enrollments with pagination.
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Retrieve validated pagination request
	reqData, ok := c.Locals("validatedEnrollmentList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&enrollModels.SectorEnrollment{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	var total int64
	db.Count(&total)

	var enrollments []enrollModels.SectorEnrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	response := map[string]interface{}{
		"enrollments": enrollments,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
}
