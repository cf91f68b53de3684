package adminRoutes

import (
	adminControllers "ilmhub/controllers/admin"
	catalogControllers "ilmhub/controllers/catalog"
	"ilmhub/middleware"
	catalogValidators "ilmhub/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up admin catalog management and dashboard routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Get("/dashboard", adminControllers.GetDashboard)

	catalogGroup := adminGroup.Group("/catalog")
	catalogGroup.Post("/sectors", catalogValidators.CreateSector(), catalogControllers.CreateSector)
	catalogGroup.Put("/sectors/:id", catalogControllers.UpdateSector)
	catalogGroup.Post("/levels", catalogValidators.CreateLevel(), catalogControllers.CreateLevel)
	catalogGroup.Post("/courses", catalogValidators.CreateCourse(), catalogControllers.CreateCourse)
	catalogGroup.Delete("/courses/:id", catalogControllers.DeleteCourse)
}
