package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	coreModel "careermap_backend/internals/features/core/model"
)

const (
	CoverageBasic        = "basic"
	CoverageIntermediate = "intermediate"
	CoverageAdvanced     = "advanced"

	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
	EnrollmentPending   = "pending_payment"
)

var CoverageLevels = []string{CoverageBasic, CoverageIntermediate, CoverageAdvanced}

type CourseModel struct {
	ID               uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title            string                      `gorm:"size:255;not null" json:"title"`
	Slug             string                      `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	ShortDescription string                      `gorm:"type:text" json:"short_description"`
	Description      string                      `gorm:"type:text" json:"description"`
	Duration         string                      `gorm:"size:50" json:"duration"`
	Price            float64                     `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	OriginalPriceINR float64                     `gorm:"type:numeric(10,2);not null;default:0" json:"original_price_inr"`
	Level            string                      `gorm:"size:50;not null;default:'Beginner'" json:"level"`
	Language         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"language"`
	ProgramsIncluded datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"programs_included"`
	IdealFor         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ideal_for"`
	JobRoles         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"job_roles"`
	IsActive         bool                        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt        time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	Skills []CourseSkillModel `gorm:"foreignKey:CourseID" json:"skills,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

// CourseSkillModel tags a course with one covered skill.
type CourseSkillModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_course_skills_pair" json:"course_id"`
	SkillTag       string    `gorm:"size:100;not null;uniqueIndex:uq_course_skills_pair" json:"skill_tag"`
	CoverageLevel  string    `gorm:"type:varchar(20);not null;default:'basic'" json:"coverage_level"`
	RelevanceScore int       `gorm:"not null;default:100" json:"relevance_score"`
}

func (CourseSkillModel) TableName() string { return "course_skills" }

type EnrollmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
	Progress   int       `gorm:"not null;default:0" json:"progress"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	Course *CourseModel `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

// CourseBundleModel is a packaged offering for one career title, linked to
// the degrees it suits.
type CourseBundleModel struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CareerTitle     string    `gorm:"size:255;not null;uniqueIndex" json:"career_title"`
	SkillsRequired  string    `gorm:"type:text;not null" json:"skills_required"`
	Duration        string    `gorm:"size:50" json:"duration"`
	OriginalPrice   float64   `gorm:"type:numeric(10,2);not null" json:"original_price"`
	DiscountedPrice float64   `gorm:"type:numeric(10,2);not null" json:"discounted_price"`
	NextBatchDate   time.Time `gorm:"type:date" json:"next_batch_date"`
	InitialSalary   int       `gorm:"not null;default:0" json:"initial_salary"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	Degrees []coreModel.DegreeModel `gorm:"many2many:course_bundle_degrees;" json:"degrees,omitempty"`
}

func (CourseBundleModel) TableName() string { return "course_bundles" }

// SkillsList splits the semicolon-separated skills cell.
func (b *CourseBundleModel) SkillsList() []string {
	out := []string{}
	for _, s := range splitTrim(b.SkillsRequired, ";") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
