package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationApplied     = "applied"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
)

type JobModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Company     string    `gorm:"size:255;not null" json:"company"`
	Location    string    `gorm:"size:255" json:"location"`
	SalaryRange string    `gorm:"size:100" json:"salary_range"`
	Description string    `gorm:"type:text" json:"description"`
	PostedAt    time.Time `gorm:"autoCreateTime" json:"posted_at"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
}

func (JobModel) TableName() string { return "jobs" }

type ApplicationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_applications_pair" json:"user_id"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_applications_pair" json:"job_id"`
	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
	Status    string    `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`

	Job *JobModel `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

func (ApplicationModel) TableName() string { return "applications" }
