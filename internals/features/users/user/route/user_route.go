package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/users/user/controller"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	r.Get("/profile", ctrl.GetProfile)
	r.Put("/profile", ctrl.UpdateProfile)
	r.Get("/dashboard", ctrl.Dashboard)
}
