package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/assessments/assessments/controller"
)

// AssessmentUserRoutes mounts the attempt lifecycle under the private group.
func AssessmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssessmentController(db)

	assessments := r.Group("/assessments")
	assessments.Post("/", ctrl.Start)
	assessments.Get("/:id", ctrl.Detail)
	assessments.Post("/:id/answers", ctrl.Answer)
	assessments.Post("/:id/submit", ctrl.Submit)
	assessments.Get("/:id/result", ctrl.Result)
}
