package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "careermap_backend/internals/features/users/auth/model"
)

const otpValidity = 10 * time.Minute

// GenerateOTP creates a 6-digit code for the mobile number and stores its
// bcrypt hash. Delivery is a log line for now; an SMS gateway hangs off
// this later.
func GenerateOTP(db *gorm.DB, mobile string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	row := authModel.OTPModel{Mobile: mobile, OTP: string(hashed)}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}

	log.Printf("[OTP] mobile=%s code=%s", mobile, code)
	return code, nil
}

// VerifyOTP checks the latest unverified code for the mobile and marks it
// used.
func VerifyOTP(db *gorm.DB, mobile, code string) error {
	var row authModel.OTPModel
	err := db.
		Where("mobile = ? AND is_verified = ?", mobile, false).
		Order("created_at DESC").
		First(&row).Error
	if err != nil {
		return errors.New("invalid OTP")
	}
	if time.Since(row.CreatedAt) > otpValidity {
		return errors.New("OTP expired")
	}
	if bcrypt.CompareHashAndPassword([]byte(row.OTP), []byte(code)) != nil {
		return errors.New("invalid OTP")
	}
	return db.Model(&row).Update("is_verified", true).Error
}
