package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the account row. Mobile number is the login identity.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Mobile   string    `gorm:"size:15;unique;not null" json:"mobile"`
	Email    *string   `gorm:"size:255;unique" json:"email,omitempty"`
	Password string    `gorm:"not null" json:"-"`
	FullName string    `gorm:"size:255" json:"full_name"`
	Gender   string    `gorm:"size:20" json:"gender"`
	Location string    `gorm:"size:255" json:"location"`

	CollegeID *uuid.UUID `gorm:"type:uuid" json:"college_id,omitempty"`
	BranchID  *uuid.UUID `gorm:"type:uuid" json:"branch_id,omitempty"`
	CityID    *uuid.UUID `gorm:"type:uuid" json:"city_id,omitempty"`
	StateID   *uuid.UUID `gorm:"type:uuid" json:"state_id,omitempty"`
	DegreeID  *uuid.UUID `gorm:"type:uuid" json:"degree_id,omitempty"`

	LanguagePref string `gorm:"size:10;not null;default:'en'" json:"language_pref"`
	Role         string `gorm:"type:varchar(20);not null;default:'user'" json:"-"`
	IsVerified   bool   `gorm:"not null;default:false" json:"is_verified"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// ProfileFields is the canonical list used for the completion percentage.
var ProfileFields = []string{"full_name", "email", "mobile", "gender", "college", "branch", "city", "state"}

// ProfileCompletion counts filled profile fields against ProfileFields.
func (u *UserModel) ProfileCompletion() int {
	filled := 0
	if u.FullName != "" {
		filled++
	}
	if u.Email != nil && *u.Email != "" {
		filled++
	}
	if u.Mobile != "" {
		filled++
	}
	if u.Gender != "" {
		filled++
	}
	if u.CollegeID != nil {
		filled++
	}
	if u.BranchID != nil {
		filled++
	}
	if u.CityID != nil {
		filled++
	}
	if u.StateID != nil {
		filled++
	}
	return filled * 100 / len(ProfileFields)
}
