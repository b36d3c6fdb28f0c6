package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentModel "careermap_backend/internals/features/assessments/assessments/model"
	userModel "careermap_backend/internals/features/users/user/model"
	helper "careermap_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// Stats returns the platform totals shown on the admin landing page.
func (ctrl *StatsController) Stats(c *fiber.Ctx) error {
	var totalUsers, totalAssessments, completedAssessments, recentUsers int64

	if err := ctrl.DB.Model(&userModel.UserModel{}).Count(&totalUsers).Error; err != nil {
		log.Printf("[ADMIN] stats failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch stats")
	}
	if err := ctrl.DB.Model(&assessmentModel.AssessmentModel{}).Count(&totalAssessments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch stats")
	}
	if err := ctrl.DB.Model(&assessmentModel.AssessmentModel{}).
		Where("assessment_status = ?", assessmentModel.StatusCompleted).
		Count(&completedAssessments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch stats")
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("created_at >= ?", weekAgo).
		Count(&recentUsers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch stats")
	}

	return helper.JsonOK(c, "Stats fetched", fiber.Map{
		"total_users":           totalUsers,
		"total_assessments":     totalAssessments,
		"completed_assessments": completedAssessments,
		"recent_users_7d":       recentUsers,
	})
}
