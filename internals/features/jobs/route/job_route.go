package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/jobs/controller"
)

// JobPublicRoutes mounts the open job board.
func JobPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewJobController(db)

	jobs := app.Group("/api/jobs")
	jobs.Get("/", ctrl.List)
}

// JobUserRoutes mounts the JWT-gated application endpoints.
func JobUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJobController(db)

	r.Post("/jobs/:id/apply", ctrl.Apply)
	r.Get("/applications", ctrl.MyApplications)
}
