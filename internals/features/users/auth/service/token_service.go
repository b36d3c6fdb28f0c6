package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"careermap_backend/internals/configs"
	authModel "careermap_backend/internals/features/users/auth/model"
	userModel "careermap_backend/internals/features/users/user/model"
)

const (
	AccessTTL  = 24 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// IssueTokens signs an access + refresh pair and stores the refresh hash.
func IssueTokens(db *gorm.DB, userID uuid.UUID, role string) (*TokenPair, error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return nil, errors.New("jwt secrets not configured")
	}

	now := time.Now()
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(AccessTTL).Unix(),
	})
	accessStr, err := access.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	})
	refreshStr, err := refresh.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, err
	}

	row := authModel.RefreshTokenModel{
		UserID:    userID,
		Token:     RefreshHash(refreshStr),
		ExpiresAt: now.Add(RefreshTTL),
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessStr, RefreshToken: refreshStr}, nil
}

// RotateRefreshToken validates a refresh token, drops its stored hash and
// issues a fresh pair with the user's current role.
func RotateRefreshToken(db *gorm.DB, refreshStr string) (*TokenPair, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(refreshStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return nil, errors.New("refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("refresh token invalid")
	}

	hash := RefreshHash(refreshStr)
	res := db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errors.New("refresh token unknown")
	}

	var user userModel.UserModel
	if err := db.Select("id, role").First(&user, "id = ?", userID).Error; err != nil {
		return nil, errors.New("refresh token invalid")
	}

	return IssueTokens(db, userID, user.Role)
}

// RevokeRefreshToken removes the stored hash; used on logout.
func RevokeRefreshToken(db *gorm.DB, refreshStr string) error {
	return db.Where("token = ?", RefreshHash(refreshStr)).
		Delete(&authModel.RefreshTokenModel{}).Error
}

// RefreshHash is an HMAC over the raw token so a DB leak cannot replay it.
func RefreshHash(token string) string {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
