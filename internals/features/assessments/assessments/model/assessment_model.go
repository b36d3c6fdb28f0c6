package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// AssessmentModel is one attempt. The question order is drawn once at
// creation and never regenerated; score and result are written exactly once
// at the pending → completed transition.
type AssessmentModel struct {
	AssessmentID            uuid.UUID      `gorm:"column:assessment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assessment_id"`
	AssessmentUserID        uuid.UUID      `gorm:"column:assessment_user_id;type:uuid;not null;index" json:"user_id"`
	AssessmentQuestionOrder []string       `gorm:"column:assessment_question_order;type:jsonb;serializer:json" json:"question_order"`
	AssessmentStatus        string         `gorm:"column:assessment_status;type:varchar(20);not null;default:'pending'" json:"status"`
	AssessmentScore         int            `gorm:"column:assessment_score;not null;default:0" json:"score"`
	AssessmentResult        datatypes.JSON `gorm:"column:assessment_result;type:jsonb" json:"result_data,omitempty"`
	AssessmentDateTaken     time.Time      `gorm:"column:assessment_date_taken;autoCreateTime" json:"date_taken"`
}

func (AssessmentModel) TableName() string {
	return "assessments"
}

func (a *AssessmentModel) Completed() bool {
	return a.AssessmentStatus == StatusCompleted
}

// HasQuestion reports whether id is part of the fixed question order.
func (a *AssessmentModel) HasQuestion(id string) bool {
	for _, q := range a.AssessmentQuestionOrder {
		if q == id {
			return true
		}
	}
	return false
}
