package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/courses/model"
	userModel "careermap_backend/internals/features/users/user/model"
	helper "careermap_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// List returns active courses, paged, newest first.
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{}).Where("is_active = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[COURSE] count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	var courses []model.CourseModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		log.Printf("[COURSE] list failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	return helper.JsonOK(c, "Courses fetched", fiber.Map{
		"courses":    courses,
		"pagination": helper.BuildPagination(total, paging, len(courses)),
	})
}

// Detail returns one active course with its skill coverage.
func (ctrl *CourseController) Detail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course model.CourseModel
	err := ctrl.DB.Preload("Skills").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("[COURSE] detail failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	return helper.JsonOK(c, "Course fetched", course)
}

// Bundles returns the active bundles linked to the caller's degree.
// Callers without a degree get every active bundle.
func (ctrl *CourseController) Bundles(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	q := ctrl.DB.Model(&model.CourseBundleModel{}).
		Preload("Degrees").
		Where("course_bundles.is_active = ?", true)
	if user.DegreeID != nil {
		q = q.Joins("JOIN course_bundle_degrees cbd ON cbd.course_bundle_model_id = course_bundles.id").
			Where("cbd.degree_model_id = ?", *user.DegreeID)
	}

	var bundles []model.CourseBundleModel
	if err := q.Order("course_bundles.career_title ASC").Find(&bundles).Error; err != nil {
		log.Printf("[COURSE] bundles failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch bundles")
	}

	return helper.JsonOK(c, "Bundles fetched", bundles)
}
