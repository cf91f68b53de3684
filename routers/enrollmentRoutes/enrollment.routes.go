package enrollmentRoutes

import (
	enrollmentControllers "ilmhub/controllers/enrollment"
	"ilmhub/middleware"
	enrollmentValidators "ilmhub/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up all enrollment and progress routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/enrollment")

	// Enrollment cascade
	enrollGroup.Post("/enroll", middleware.JWTMiddleware, enrollmentValidators.EnrollRequest(), enrollmentControllers.EnrollInSector)

	// Status lookup answers anonymous callers with enrolled=false
	enrollGroup.Get("/status", middleware.OptionalJWTMiddleware, enrollmentControllers.EnrollmentStatus)

	enrollGroup.Get("/my", middleware.JWTMiddleware, enrollmentValidators.EnrollmentList(), enrollmentControllers.GetMyEnrollments)

	// Progress tracking
	enrollGroup.Put("/progress", middleware.JWTMiddleware, enrollmentValidators.ProgressUpdate(), enrollmentControllers.UpdateProgress)
	enrollGroup.Get("/summary", middleware.JWTMiddleware, enrollmentControllers.GetSummary)

	// Mentor grading
	mentorGroup := app.Group("/mentor")
	mentorGroup.Put("/scores", middleware.JWTMiddleware, middleware.RequireRole("MENTOR", "ADMIN"),
		enrollmentValidators.ScoreUpdate(), enrollmentControllers.RecordScores)
}
