package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CareerPathModel is a score-banded career track. Read-only at match time;
// rows come from the import tooling.
type CareerPathModel struct {
	CareerPathID             uuid.UUID      `gorm:"column:career_path_id;type:uuid;default:gen_random_uuid();primaryKey" json:"career_path_id"`
	CareerPathCareerID       string         `gorm:"column:career_path_career_id;size:50;not null;uniqueIndex" json:"career_id"`
	CareerPathTitle          string         `gorm:"column:career_path_title;size:255;not null" json:"title"`
	CareerPathDescription    string         `gorm:"column:career_path_description;type:text" json:"description"`
	CareerPathMinScore       int            `gorm:"column:career_path_min_score;not null" json:"min_score"`
	CareerPathRequiredSkills pq.StringArray `gorm:"column:career_path_required_skills;type:text[]" json:"required_skills"`
	CareerPathCreatedAt      time.Time      `gorm:"column:career_path_created_at;autoCreateTime" json:"created_at"`
}

func (CareerPathModel) TableName() string {
	return "career_paths"
}
