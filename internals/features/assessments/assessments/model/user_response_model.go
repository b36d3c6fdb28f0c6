package model

import (
	"time"

	"github.com/google/uuid"
)

// UserResponseModel holds one answer per (assessment, question) pair.
// Answering the same question again overwrites the row.
type UserResponseModel struct {
	UserResponseID             uuid.UUID `gorm:"column:user_response_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_response_id"`
	UserResponseAssessmentID   uuid.UUID `gorm:"column:user_response_assessment_id;type:uuid;not null;uniqueIndex:uq_user_responses_pair" json:"assessment_id"`
	UserResponseQuestionID     uuid.UUID `gorm:"column:user_response_question_id;type:uuid;not null;uniqueIndex:uq_user_responses_pair" json:"question_id"`
	UserResponseSelectedOption string    `gorm:"column:user_response_selected_option;size:255;not null" json:"selected_option"`
	UserResponseCreatedAt      time.Time `gorm:"column:user_response_created_at;autoCreateTime" json:"created_at"`
	UserResponseUpdatedAt      time.Time `gorm:"column:user_response_updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserResponseModel) TableName() string {
	return "user_responses"
}
