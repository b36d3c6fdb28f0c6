package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/jobs/model"
	helper "careermap_backend/internals/helpers"
)

type JobController struct {
	DB *gorm.DB
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{DB: db}
}

// List returns active job posts, paged, newest first.
func (ctrl *JobController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.JobModel{}).Where("is_active = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[JOB] count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch jobs")
	}

	var jobs []model.JobModel
	if err := q.Order("posted_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&jobs).Error; err != nil {
		log.Printf("[JOB] list failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch jobs")
	}

	return helper.JsonOK(c, "Jobs fetched", fiber.Map{
		"jobs":       jobs,
		"pagination": helper.BuildPagination(total, paging, len(jobs)),
	})
}

// Apply files one application per user per job.
func (ctrl *JobController) Apply(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var job model.JobModel
	err = ctrl.DB.Where("id = ? AND is_active = ?", c.Params("id"), true).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Job not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch job")
	}

	application := model.ApplicationModel{
		UserID: userID,
		JobID:  job.ID,
		Status: model.ApplicationApplied,
	}
	if err := ctrl.DB.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Already applied to this job")
		}
		log.Printf("[JOB] apply failed: %v", err)
		return helper.JsonError(c, fiber.StatusConflict, "Already applied to this job")
	}

	return helper.JsonCreated(c, "Application submitted", application)
}

// MyApplications lists the caller's applications, newest first.
func (ctrl *JobController) MyApplications(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var applications []model.ApplicationModel
	err = ctrl.DB.Preload("Job").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		log.Printf("[JOB] list applications failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	return helper.JsonOK(c, "Applications fetched", applications)
}
