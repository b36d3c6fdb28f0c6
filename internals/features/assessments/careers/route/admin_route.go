package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/assessments/careers/controller"
)

func CareerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCareerAdminController(db)
	r.Get("/careers", ctrl.List)
}
