package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/admin/controller"
)

func AdminStatsRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStatsController(db)

	r.Get("/stats", ctrl.Stats)
}
