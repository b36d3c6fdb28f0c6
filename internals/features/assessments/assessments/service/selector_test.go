package service

import (
	"testing"

	"github.com/google/uuid"

	qModel "careermap_backend/internals/features/assessments/questions/model"
)

func makeBank(technical, aptitude, psychometric int) []qModel.QuestionModel {
	var bank []qModel.QuestionModel
	add := func(n int, cat string) {
		for i := 0; i < n; i++ {
			bank = append(bank, qModel.QuestionModel{
				QuestionID:       uuid.New(),
				QuestionCategory: cat,
			})
		}
	}
	add(technical, qModel.CategoryTechnical)
	add(aptitude, qModel.CategoryAptitude)
	add(psychometric, qModel.CategoryPsychometric)
	return bank
}

func countByCategory(bank []qModel.QuestionModel, order []string) map[string]int {
	cat := map[string]string{}
	for _, q := range bank {
		cat[q.QuestionID.String()] = q.QuestionCategory
	}
	counts := map[string]int{}
	for _, id := range order {
		counts[cat[id]]++
	}
	return counts
}

func TestDraw_TechTrackQuotas(t *testing.T) {
	bank := makeBank(10, 10, 10)
	order := NewSelector(1).Draw(bank, true)

	if len(order) != 7 {
		t.Fatalf("order length = %d, want 7", len(order))
	}

	counts := countByCategory(bank, order)
	if counts[qModel.CategoryTechnical] != TechTechnicalQuota {
		t.Errorf("technical = %d, want %d", counts[qModel.CategoryTechnical], TechTechnicalQuota)
	}
	if counts[qModel.CategoryAptitude] != TechAptitudeQuota {
		t.Errorf("aptitude = %d, want %d", counts[qModel.CategoryAptitude], TechAptitudeQuota)
	}
	if counts[qModel.CategoryPsychometric] != TechPsychometricQuota {
		t.Errorf("psychometric = %d, want %d", counts[qModel.CategoryPsychometric], TechPsychometricQuota)
	}
}

func TestDraw_NonTechQuotas(t *testing.T) {
	bank := makeBank(10, 10, 10)
	order := NewSelector(2).Draw(bank, false)

	if len(order) != 7 {
		t.Fatalf("order length = %d, want 7", len(order))
	}

	counts := countByCategory(bank, order)
	if counts[qModel.CategoryTechnical] != 0 {
		t.Errorf("technical = %d, want 0", counts[qModel.CategoryTechnical])
	}
	if counts[qModel.CategoryAptitude] != NonTechAptitudeQuota {
		t.Errorf("aptitude = %d, want %d", counts[qModel.CategoryAptitude], NonTechAptitudeQuota)
	}
	if counts[qModel.CategoryPsychometric] != NonTechPsychometricQuota {
		t.Errorf("psychometric = %d, want %d", counts[qModel.CategoryPsychometric], NonTechPsychometricQuota)
	}
}

func TestDraw_NoDuplicates(t *testing.T) {
	bank := makeBank(4, 1, 2)
	order := NewSelector(3).Draw(bank, true)

	seen := map[string]bool{}
	for _, id := range order {
		if seen[id] {
			t.Fatalf("duplicate question id %s", id)
		}
		seen[id] = true
	}
}

func TestDraw_ShortCategoriesGiveEverything(t *testing.T) {
	// 2 technical, 0 aptitude, 1 psychometric against the 4+1+2 quota.
	bank := makeBank(2, 0, 1)
	order := NewSelector(4).Draw(bank, true)

	if len(order) != 3 {
		t.Fatalf("order length = %d, want 3", len(order))
	}
}

func TestDraw_EmptyBank(t *testing.T) {
	order := NewSelector(5).Draw(nil, true)
	if len(order) != 0 {
		t.Fatalf("order length = %d, want 0", len(order))
	}
}

func TestDraw_SameSeedSameOrder(t *testing.T) {
	bank := makeBank(6, 3, 4)

	a := NewSelector(42).Draw(bank, true)
	b := NewSelector(42).Draw(bank, true)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("orders diverge at %d: %s vs %s", i, a[i], b[i])
		}
	}
}
