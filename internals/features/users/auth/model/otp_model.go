package model

import (
	"time"

	"github.com/google/uuid"
)

// OTPModel holds one-time codes for the forgot-password flow.
type OTPModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Mobile     string    `gorm:"size:15;not null;index" json:"mobile"`
	OTP        string    `gorm:"size:100;not null" json:"-"` // bcrypt hash of the code
	IsVerified bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (OTPModel) TableName() string {
	return "otps"
}
