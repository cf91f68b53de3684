package enrollmentValidator

import (
	enrollmentController "ilmhub/controllers/enrollment"
	"ilmhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// EnrollRequest validates the enrollment intake payload before any database
// work happens.
func EnrollRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(enrollmentController.EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "SectorID":
					errors["sector_id"] = "Sector ID is required!"
				case "Motivation":
					errors["motivation"] = "Motivation statement is required!"
				case "StudyHoursPerWeek":
					errors["study_hours_per_week"] = "Study hours per week must be positive!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollRequest", reqData)
		return c.Next()
	}
}

// ProgressUpdate validates a progress overwrite request.
func ProgressUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID   uint     `json:"course_id"`
			Percentage *float64 `json:"percentage"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.Percentage == nil {
			errors["percentage"] = "Percentage is required!"
		} else if *reqData.Percentage < 0 || *reqData.Percentage > 100 {
			errors["percentage"] = "Percentage must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgressUpdate", reqData)
		return c.Next()
	}
}

// ScoreUpdate validates a mentor's component-score submission.
func ScoreUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID          uint     `json:"user_id"`
			CourseID        uint     `json:"course_id"`
			TestScore       *float64 `json:"test_score"`
			MidScore        *float64 `json:"mid_score"`
			AssignmentScore *float64 `json:"assignment_score"`
			FinalScore      *float64 `json:"final_score"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "Student user ID is required!"
		}
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.TestScore == nil && reqData.MidScore == nil && reqData.AssignmentScore == nil && reqData.FinalScore == nil {
			errors["scores"] = "At least one score is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedScoreUpdate", reqData)
		return c.Next()
	}
}

// EnrollmentList validates optional pagination for the my-enrollments list.
func EnrollmentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentList", reqData)
		return c.Next()
	}
}
