package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/assessments/questions/controller"
)

func QuestionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionAdminController(db)

	questions := r.Group("/questions")
	questions.Get("/", ctrl.List)
	questions.Post("/", ctrl.Create)
	questions.Delete("/:id", ctrl.Delete)
}
