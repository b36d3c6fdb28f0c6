package dto

import (
	"testing"

	qModel "careermap_backend/internals/features/assessments/questions/model"
)

func TestCreateQuestionRequest_Normalize(t *testing.T) {
	req := CreateQuestionRequest{
		Text:          "  Which keyword declares a variable?  ",
		CorrectOption: " a ",
		Category:      " Technical ",
		SkillTag:      " python ",
	}
	req.Normalize()

	if req.Text != "Which keyword declares a variable?" {
		t.Errorf("text = %q", req.Text)
	}
	if req.CorrectOption != "A" {
		t.Errorf("correct_option = %q, want A", req.CorrectOption)
	}
	if req.Category != qModel.CategoryTechnical {
		t.Errorf("category = %q, want technical", req.Category)
	}
	if req.Difficulty != qModel.DifficultyMedium {
		t.Errorf("difficulty = %q, want medium default", req.Difficulty)
	}
}
