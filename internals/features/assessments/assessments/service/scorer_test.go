package service

import (
	"testing"

	"github.com/google/uuid"

	aModel "careermap_backend/internals/features/assessments/assessments/model"
	qModel "careermap_backend/internals/features/assessments/questions/model"
)

func question(cat, correct, skill string) qModel.QuestionModel {
	return qModel.QuestionModel{
		QuestionID: uuid.New(),
		QuestionOptions: map[string]string{
			"A": "a", "B": "b", "C": "c", "D": "d",
		},
		QuestionCorrectOption: correct,
		QuestionCategory:      cat,
		QuestionSkillTag:      skill,
	}
}

func answer(q qModel.QuestionModel, option string) aModel.UserResponseModel {
	return aModel.UserResponseModel{
		UserResponseQuestionID:     q.QuestionID,
		UserResponseSelectedOption: option,
	}
}

func TestScore_FloorRaisesLowCombined(t *testing.T) {
	// 3/4 technical + 1/2 aptitude = 4/6 = 66 raw, floored to 70.
	qs := []qModel.QuestionModel{
		question(qModel.CategoryTechnical, "A", "python"),
		question(qModel.CategoryTechnical, "A", "python"),
		question(qModel.CategoryTechnical, "A", "sql"),
		question(qModel.CategoryTechnical, "A", "sql"),
		question(qModel.CategoryAptitude, "A", ""),
		question(qModel.CategoryAptitude, "A", ""),
	}
	responses := []aModel.UserResponseModel{
		answer(qs[0], "A"),
		answer(qs[1], "A"),
		answer(qs[2], "A"),
		answer(qs[3], "B"),
		answer(qs[4], "A"),
		answer(qs[5], "B"),
	}

	result := Score(qs, responses)

	if result.Score != 70 {
		t.Fatalf("score = %d, want 70", result.Score)
	}
	if result.ConfidenceBand != "medium" {
		t.Errorf("confidence band = %q, want medium", result.ConfidenceBand)
	}

	tech := result.Categories[qModel.CategoryTechnical]
	if tech.Correct != 3 || tech.Answered != 4 {
		t.Errorf("technical = %d/%d, want 3/4", tech.Correct, tech.Answered)
	}
	if tech.RawPercent != 75 || tech.Percent != 75 {
		t.Errorf("technical pct = %d raw / %d display, want 75/75", tech.RawPercent, tech.Percent)
	}

	apt := result.Categories[qModel.CategoryAptitude]
	if apt.RawPercent != 50 || apt.Percent != 70 {
		t.Errorf("aptitude pct = %d raw / %d display, want 50/70", apt.RawPercent, apt.Percent)
	}
}

func TestScore_FloorNeverLowers(t *testing.T) {
	qs := []qModel.QuestionModel{
		question(qModel.CategoryTechnical, "A", ""),
		question(qModel.CategoryTechnical, "A", ""),
	}
	responses := []aModel.UserResponseModel{
		answer(qs[0], "A"),
		answer(qs[1], "A"),
	}

	result := Score(qs, responses)
	if result.Score != 100 {
		t.Fatalf("score = %d, want 100", result.Score)
	}
	if result.ConfidenceBand != "high" {
		t.Errorf("confidence band = %q, want high", result.ConfidenceBand)
	}
}

func TestScore_ZeroAnsweredCategoryStaysZero(t *testing.T) {
	// No technical answers at all: the floor must not invent a 70.
	qs := []qModel.QuestionModel{
		question(qModel.CategoryAptitude, "A", ""),
		question(qModel.CategoryAptitude, "B", ""),
	}
	responses := []aModel.UserResponseModel{
		answer(qs[0], "A"),
		answer(qs[1], "B"),
	}

	result := Score(qs, responses)

	tech := result.Categories[qModel.CategoryTechnical]
	if tech.Percent != 0 || tech.RawPercent != 0 {
		t.Errorf("technical pct = %d/%d, want 0/0", tech.RawPercent, tech.Percent)
	}
	apt := result.Categories[qModel.CategoryAptitude]
	if apt.Percent != 100 {
		t.Errorf("aptitude pct = %d, want 100", apt.Percent)
	}
	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
}

func TestScore_NothingAnswered(t *testing.T) {
	qs := []qModel.QuestionModel{
		question(qModel.CategoryTechnical, "A", "python"),
	}

	result := Score(qs, nil)
	if result.Score != 0 {
		t.Fatalf("score = %d, want 0", result.Score)
	}
	if result.ConfidenceBand != "low" {
		t.Errorf("confidence band = %q, want low", result.ConfidenceBand)
	}
}

func TestScore_TraitsFromTraitMap(t *testing.T) {
	p1 := question(qModel.CategoryPsychometric, "", "")
	p1.QuestionTraitMap = map[string]string{"A": "Creative Thinker", "B": "Analytical"}
	p2 := question(qModel.CategoryPsychometric, "", "")
	p2.QuestionTraitMap = map[string]string{"A": "Creative Thinker"}

	responses := []aModel.UserResponseModel{
		answer(p1, "A"),
		answer(p2, "A"),
	}

	result := Score([]qModel.QuestionModel{p1, p2}, responses)

	// Duplicates are kept; no technical answers so no supplemental traits.
	want := []string{"Creative Thinker", "Creative Thinker"}
	if len(result.Traits) != len(want) {
		t.Fatalf("traits = %v, want %v", result.Traits, want)
	}
	for i := range want {
		if result.Traits[i] != want[i] {
			t.Fatalf("traits = %v, want %v", result.Traits, want)
		}
	}
}

func TestScore_SupplementalTraitsForTechAnswers(t *testing.T) {
	tq := question(qModel.CategoryTechnical, "A", "python")
	p := question(qModel.CategoryPsychometric, "", "")
	p.QuestionTraitMap = map[string]string{"A": "Technical Proficiency"}

	responses := []aModel.UserResponseModel{
		answer(tq, "B"),
		answer(p, "A"),
	}

	result := Score([]qModel.QuestionModel{tq, p}, responses)

	counts := map[string]int{}
	for _, trait := range result.Traits {
		counts[trait]++
	}
	if counts[TraitTechnicalProficiency] != 1 {
		t.Errorf("Technical Proficiency count = %d, want 1 (no duplicate append)", counts[TraitTechnicalProficiency])
	}
	if counts[TraitProblemSolving] != 1 {
		t.Errorf("Problem Solving count = %d, want 1", counts[TraitProblemSolving])
	}
}

func TestScore_SkillAccuracyIsRaw(t *testing.T) {
	qs := []qModel.QuestionModel{
		question(qModel.CategoryTechnical, "A", "python"),
		question(qModel.CategoryTechnical, "A", "python"),
		question(qModel.CategoryTechnical, "A", "sql"),
	}
	responses := []aModel.UserResponseModel{
		answer(qs[0], "A"),
		answer(qs[1], "B"),
		answer(qs[2], "B"),
	}

	result := Score(qs, responses)

	if result.SkillAccuracy["python"] != 50 {
		t.Errorf("python accuracy = %d, want 50 (not floored)", result.SkillAccuracy["python"])
	}
	if result.SkillAccuracy["sql"] != 0 {
		t.Errorf("sql accuracy = %d, want 0", result.SkillAccuracy["sql"])
	}
}

func TestScore_IgnoresResponsesOutsideBank(t *testing.T) {
	q := question(qModel.CategoryTechnical, "A", "python")
	stray := aModel.UserResponseModel{
		UserResponseQuestionID:     uuid.New(),
		UserResponseSelectedOption: "A",
	}

	result := Score([]qModel.QuestionModel{q}, []aModel.UserResponseModel{answer(q, "A"), stray})

	tech := result.Categories[qModel.CategoryTechnical]
	if tech.Answered != 1 {
		t.Fatalf("answered = %d, want 1", tech.Answered)
	}
}
