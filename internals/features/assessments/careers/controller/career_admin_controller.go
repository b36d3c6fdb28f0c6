package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	careerModel "careermap_backend/internals/features/assessments/careers/model"
	helper "careermap_backend/internals/helpers"
)

type CareerAdminController struct {
	DB *gorm.DB
}

func NewCareerAdminController(db *gorm.DB) *CareerAdminController {
	return &CareerAdminController{DB: db}
}

// GET /api/a/careers, the full band table ascending by threshold.
func (ctrl *CareerAdminController) List(c *fiber.Ctx) error {
	var rows []careerModel.CareerPathModel
	if err := ctrl.DB.Order("career_path_min_score ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list career paths")
	}
	return helper.JsonOK(c, "Career paths found", rows)
}
