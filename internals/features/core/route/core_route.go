package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/core/controller"
)

// CoreRoutes mounts the public lookup endpoints.
func CoreRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewCoreController(db)

	core := app.Group("/api/core")
	core.Get("/states", ctrl.ListStates)
	core.Get("/cities", ctrl.ListCities)
	core.Get("/colleges", ctrl.ListColleges)
	core.Get("/branches", ctrl.ListBranches)
	core.Get("/degrees", ctrl.ListDegrees)
}
