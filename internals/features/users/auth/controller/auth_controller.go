package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"careermap_backend/internals/features/users/auth/dto"
	authService "careermap_backend/internals/features/users/auth/service"
	userModel "careermap_backend/internals/features/users/user/model"
	helper "careermap_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		Mobile:   req.Mobile,
		Password: string(hashed),
		FullName: req.FullName,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Mobile or email already registered")
	}

	tokens, err := authService.IssueTokens(ctrl.DB, user.ID, user.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonCreated(c, "Registered", fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

// POST /api/auth/login. The identifier may be a mobile number or an email.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	q := ctrl.DB
	if strings.Contains(req.Identifier, "@") {
		q = q.Where("email = ?", req.Identifier)
	} else {
		q = q.Where("mobile = ?", req.Identifier)
	}
	if err := q.First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	tokens, err := authService.IssueTokens(ctrl.DB, user.ID, user.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Logged in", fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

// POST /api/auth/forgot-password
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	mobile := req.MobileOrEmail
	if strings.Contains(mobile, "@") {
		var user userModel.UserModel
		if err := ctrl.DB.Where("email = ?", mobile).First(&user).Error; err != nil {
			// do not reveal whether the account exists
			return helper.JsonOK(c, "If the account exists, an OTP has been sent", nil)
		}
		mobile = user.Mobile
	}

	if _, err := authService.GenerateOTP(ctrl.DB, mobile); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate OTP")
	}
	return helper.JsonOK(c, "If the account exists, an OTP has been sent", nil)
}

// POST /api/auth/reset-password
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := authService.VerifyOTP(ctrl.DB, req.Mobile, req.OTP); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("mobile = ?", req.Mobile).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := ctrl.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonOK(c, "Password reset successfully. Please login.", nil)
}

// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refresh := bearerOrBody(c)
	if refresh == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	tokens, err := authService.RotateRefreshToken(ctrl.DB, refresh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	return helper.JsonOK(c, "Token refreshed", tokens)
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	refresh := bearerOrBody(c)
	if refresh != "" {
		_ = authService.RevokeRefreshToken(ctrl.DB, refresh)
	}
	return helper.JsonOK(c, "Logged out", nil)
}

func bearerOrBody(c *fiber.Ctx) string {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err == nil && body.RefreshToken != "" {
		return strings.TrimSpace(body.RefreshToken)
	}
	return strings.TrimSpace(c.Cookies("refresh_token"))
}
