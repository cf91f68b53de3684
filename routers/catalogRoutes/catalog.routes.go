package catalogRoutes

import (
	catalogControllers "ilmhub/controllers/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up the public catalog read routes
func SetupCatalogRoutes(app *fiber.App) {
	catalogGroup := app.Group("/catalog")

	catalogGroup.Get("/sectors", catalogControllers.GetSectors)
	catalogGroup.Get("/sectors/:id", catalogControllers.GetSectorDetail)
}
