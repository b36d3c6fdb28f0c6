package dto

import (
	"strings"

	qModel "careermap_backend/internals/features/assessments/questions/model"
)

type CreateQuestionRequest struct {
	Text          string            `json:"text" validate:"required"`
	Options       map[string]string `json:"options" validate:"required,min=2"`
	CorrectOption string            `json:"correct_option" validate:"omitempty,max=10"`
	Category      string            `json:"category" validate:"required,oneof=psychometric aptitude technical"`
	SkillTag      string            `json:"skill_tag" validate:"omitempty,max=100"`
	Difficulty    string            `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	TraitMap      map[string]string `json:"trait_map" validate:"omitempty"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
	r.CorrectOption = strings.ToUpper(strings.TrimSpace(r.CorrectOption))
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.SkillTag = strings.TrimSpace(r.SkillTag)
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	if r.Difficulty == "" {
		r.Difficulty = qModel.DifficultyMedium
	}
}

func (r *CreateQuestionRequest) ToModel() *qModel.QuestionModel {
	return &qModel.QuestionModel{
		QuestionText:          r.Text,
		QuestionOptions:       r.Options,
		QuestionCorrectOption: r.CorrectOption,
		QuestionCategory:      r.Category,
		QuestionSkillTag:      r.SkillTag,
		QuestionDifficulty:    r.Difficulty,
		QuestionTraitMap:      r.TraitMap,
	}
}
