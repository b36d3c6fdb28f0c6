package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryPsychometric = "psychometric"
	CategoryAptitude     = "aptitude"
	CategoryTechnical    = "technical"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var Categories = []string{CategoryPsychometric, CategoryAptitude, CategoryTechnical}
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// QuestionModel is one quiz item in the question bank. Rows are immutable
// once created except through administrative re-import.
//
// QuestionTraitMap maps an option key to a descriptive trait label and is
// only populated for psychometric questions; the scorer reads traits from
// here instead of inspecting the question text.
type QuestionModel struct {
	QuestionID            uuid.UUID         `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionText          string            `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOptions       map[string]string `gorm:"column:question_options;type:jsonb;serializer:json" json:"question_options"`
	QuestionCorrectOption string            `gorm:"column:question_correct_option;type:varchar(10)" json:"question_correct_option,omitempty"`
	QuestionCategory      string            `gorm:"column:question_category;type:varchar(20);not null;default:'technical'" json:"question_category"`
	QuestionSkillTag      string            `gorm:"column:question_skill_tag;size:100" json:"question_skill_tag,omitempty"`
	QuestionDifficulty    string            `gorm:"column:question_difficulty;type:varchar(20);not null;default:'medium'" json:"question_difficulty"`
	QuestionTraitMap      map[string]string `gorm:"column:question_trait_map;type:jsonb;serializer:json" json:"question_trait_map,omitempty"`
	QuestionCreatedAt     time.Time         `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

func ValidDifficulty(d string) bool {
	for _, v := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}
