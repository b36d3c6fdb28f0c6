package dto

import "strings"

type RegisterRequest struct {
	Mobile   string `json:"mobile" validate:"required,min=10,max=15,numeric"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"omitempty,max=255"`
}

func (r *RegisterRequest) Normalize() {
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
}

type LoginRequest struct {
	// mobile number or email address
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(strings.ToLower(r.Identifier))
}

type ForgotPasswordRequest struct {
	MobileOrEmail string `json:"mobile_or_email" validate:"required"`
}

func (r *ForgotPasswordRequest) Normalize() {
	r.MobileOrEmail = strings.TrimSpace(strings.ToLower(r.MobileOrEmail))
}

type ResetPasswordRequest struct {
	Mobile      string `json:"mobile" validate:"required,min=10,max=15,numeric"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (r *ResetPasswordRequest) Normalize() {
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.OTP = strings.TrimSpace(r.OTP)
}
