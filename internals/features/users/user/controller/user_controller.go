package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assessmentModel "careermap_backend/internals/features/assessments/assessments/model"
	coreModel "careermap_backend/internals/features/core/model"
	courseModel "careermap_backend/internals/features/courses/model"
	"careermap_backend/internals/features/users/user/dto"
	userModel "careermap_backend/internals/features/users/user/model"
	helper "careermap_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

func profilePayload(u *userModel.UserModel) fiber.Map {
	return fiber.Map{
		"profile":            u,
		"profile_completion": u.ProfileCompletion(),
	}
}

// GetProfile returns the caller's profile with its completion percentage.
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[USER] load profile failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	return helper.JsonOK(c, "Profile fetched", profilePayload(&user))
}

// UpdateProfile applies the editable fields and recomputes the display
// location from the selected city and state.
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		if *req.Email == "" {
			user.Email = nil
		} else {
			user.Email = req.Email
		}
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.CollegeID != nil {
		user.CollegeID = req.CollegeID
	}
	if req.BranchID != nil {
		user.BranchID = req.BranchID
	}
	if req.CityID != nil {
		user.CityID = req.CityID
	}
	if req.StateID != nil {
		user.StateID = req.StateID
	}
	if req.DegreeID != nil {
		user.DegreeID = req.DegreeID
	}
	if req.LanguagePref != nil && *req.LanguagePref != "" {
		user.LanguagePref = *req.LanguagePref
	}

	user.Location = ctrl.composeLocation(user.CityID, user.StateID)

	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("[USER] update profile failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonOK(c, "Profile updated", profilePayload(&user))
}

// composeLocation renders "City, State" from the lookup tables. Either
// side missing leaves whatever is available; both missing yields "".
func (ctrl *UserController) composeLocation(cityID, stateID *uuid.UUID) string {
	var cityName, stateName string
	if cityID != nil {
		var city coreModel.CityModel
		if err := ctrl.DB.First(&city, "id = ?", *cityID).Error; err == nil {
			cityName = city.Name
		}
	}
	if stateID != nil {
		var state coreModel.StateModel
		if err := ctrl.DB.First(&state, "id = ?", *stateID).Error; err == nil {
			stateName = state.Name
		}
	}
	switch {
	case cityName != "" && stateName != "":
		return cityName + ", " + stateName
	case cityName != "":
		return cityName
	default:
		return stateName
	}
}

// Dashboard composes the landing payload: the latest completed attempt,
// the active enrollment if any, and the stored course recommendations
// when the user finished an assessment but has not enrolled yet.
func (ctrl *UserController) Dashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	payload := fiber.Map{
		"profile_completion":  user.ProfileCompletion(),
		"assessment":          nil,
		"enrollment":          nil,
		"recommended_courses": nil,
	}

	var latest assessmentModel.AssessmentModel
	haveAssessment := ctrl.DB.
		Where("assessment_user_id = ? AND assessment_status = ?", userID, assessmentModel.StatusCompleted).
		Order("assessment_date_taken DESC").
		First(&latest).Error == nil
	if haveAssessment {
		payload["assessment"] = latest
	}

	var enrollment courseModel.EnrollmentModel
	haveEnrollment := ctrl.DB.
		Preload("Course").
		Where("user_id = ? AND status = ?", userID, courseModel.EnrollmentActive).
		Order("enrolled_at DESC").
		First(&enrollment).Error == nil
	if haveEnrollment {
		payload["enrollment"] = enrollment
	}

	if haveAssessment && !haveEnrollment && len(latest.AssessmentResult) > 0 {
		var result struct {
			RecommendedCourses []fiber.Map `json:"recommended_courses"`
		}
		if err := json.Unmarshal(latest.AssessmentResult, &result); err == nil {
			payload["recommended_courses"] = result.RecommendedCourses
		}
	}

	return helper.JsonOK(c, "Dashboard fetched", payload)
}
