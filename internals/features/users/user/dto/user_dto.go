package dto

import (
	"strings"

	"github.com/google/uuid"
)

// UpdateProfileRequest carries the editable profile fields. Identity
// fields (mobile, password, role) are never updatable here.
type UpdateProfileRequest struct {
	FullName     *string    `json:"full_name" validate:"omitempty,max=255"`
	Email        *string    `json:"email" validate:"omitempty,email,max=255"`
	Gender       *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	CollegeID    *uuid.UUID `json:"college_id" validate:"omitempty"`
	BranchID     *uuid.UUID `json:"branch_id" validate:"omitempty"`
	CityID       *uuid.UUID `json:"city_id" validate:"omitempty"`
	StateID      *uuid.UUID `json:"state_id" validate:"omitempty"`
	DegreeID     *uuid.UUID `json:"degree_id" validate:"omitempty"`
	LanguagePref *string    `json:"language_pref" validate:"omitempty,max=10"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
	if r.Gender != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Gender))
		r.Gender = &v
	}
	if r.LanguagePref != nil {
		v := strings.ToLower(strings.TrimSpace(*r.LanguagePref))
		r.LanguagePref = &v
	}
}
