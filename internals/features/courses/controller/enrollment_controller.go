package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/courses/model"
	"careermap_backend/internals/features/courses/service"
	userModel "careermap_backend/internals/features/users/user/model"
	helper "careermap_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// Enroll signs the caller up for a course. Free courses activate
// immediately; priced courses open a Snap transaction and the enrollment
// stays pending until payment settles.
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var course model.CourseModel
	err = ctrl.DB.Where("slug = ? AND is_active = ?", c.Params("slug"), true).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	var existing model.EnrollmentModel
	err = ctrl.DB.Where(
		"user_id = ? AND course_id = ? AND status IN ?",
		userID, course.ID,
		[]string{model.EnrollmentActive, model.EnrollmentCompleted, model.EnrollmentPending},
	).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Already enrolled in this course")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check enrollment")
	}

	enrollment := model.EnrollmentModel{
		UserID:   userID,
		CourseID: course.ID,
		Status:   model.EnrollmentActive,
	}
	if course.Price > 0 {
		enrollment.Status = model.EnrollmentPending
	}

	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		log.Printf("[ENROLL] create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enroll")
	}

	if course.Price <= 0 {
		return helper.JsonCreated(c, "Enrolled", fiber.Map{"enrollment": enrollment})
	}

	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	token, redirectURL, err := service.GenerateSnapToken(&course, enrollment.ID.String(), service.CustomerInput{
		FullName: user.FullName,
		Email:    email,
		Phone:    user.Mobile,
	})
	if err != nil {
		// Payment could not start, do not leave a dangling pending row.
		ctrl.DB.Delete(&model.EnrollmentModel{}, "id = ?", enrollment.ID)
		log.Printf("[ENROLL] snap transaction failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to start payment")
	}

	return helper.JsonCreated(c, "Payment required", fiber.Map{
		"enrollment":   enrollment,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// MyEnrollments lists the caller's enrollments, newest first.
func (ctrl *EnrollmentController) MyEnrollments(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var enrollments []model.EnrollmentModel
	err = ctrl.DB.Preload("Course").
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		log.Printf("[ENROLL] list failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return helper.JsonOK(c, "Enrollments fetched", enrollments)
}
