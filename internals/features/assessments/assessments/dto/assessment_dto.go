package dto

import (
	"strings"

	qModel "careermap_backend/internals/features/assessments/questions/model"
)

// AnswerRequest records or overwrites one selected option.
type AnswerRequest struct {
	QuestionID     string `json:"question_id" validate:"required,uuid"`
	SelectedOption string `json:"selected_option" validate:"required,max=255"`
}

func (r *AnswerRequest) Normalize() {
	r.QuestionID = strings.TrimSpace(r.QuestionID)
	r.SelectedOption = strings.TrimSpace(r.SelectedOption)
}

// QuestionPublic is the question as shown to the person taking the
// assessment: no correct option, no trait map.
type QuestionPublic struct {
	QuestionID string            `json:"question_id"`
	Text       string            `json:"text"`
	Options    map[string]string `json:"options"`
	Category   string            `json:"category"`
	Difficulty string            `json:"difficulty"`
}

func ToQuestionPublic(q qModel.QuestionModel) QuestionPublic {
	return QuestionPublic{
		QuestionID: q.QuestionID.String(),
		Text:       q.QuestionText,
		Options:    q.QuestionOptions,
		Category:   q.QuestionCategory,
		Difficulty: q.QuestionDifficulty,
	}
}
