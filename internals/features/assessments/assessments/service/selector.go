package service

import (
	"math/rand"

	qModel "careermap_backend/internals/features/assessments/questions/model"
)

// Per-category quotas. Tech-track students get a technical-heavy mix,
// everyone else gets aptitude + psychometric only.
const (
	TechTechnicalQuota    = 4
	TechAptitudeQuota     = 1
	TechPsychometricQuota = 2

	NonTechAptitudeQuota     = 2
	NonTechPsychometricQuota = 5
)

// Selector draws the fixed question order for one attempt. The randomness
// source is injected so tests can seed it.
type Selector struct {
	rng *rand.Rand
}

func NewSelector(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// Draw picks question ids per category quota, without replacement, then
// shuffles the combined list so category order is not visible to the user.
// Short categories yield everything they have; an empty bank yields an
// empty order. Never errors, never pads.
func (s *Selector) Draw(bank []qModel.QuestionModel, techTrack bool) []string {
	byCat := map[string][]string{}
	for _, q := range bank {
		byCat[q.QuestionCategory] = append(byCat[q.QuestionCategory], q.QuestionID.String())
	}

	var picked []string
	if techTrack {
		picked = append(picked, s.take(byCat[qModel.CategoryTechnical], TechTechnicalQuota)...)
		picked = append(picked, s.take(byCat[qModel.CategoryAptitude], TechAptitudeQuota)...)
		picked = append(picked, s.take(byCat[qModel.CategoryPsychometric], TechPsychometricQuota)...)
	} else {
		picked = append(picked, s.take(byCat[qModel.CategoryAptitude], NonTechAptitudeQuota)...)
		picked = append(picked, s.take(byCat[qModel.CategoryPsychometric], NonTechPsychometricQuota)...)
	}

	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked
}

func (s *Selector) take(ids []string, n int) []string {
	cp := append([]string(nil), ids...)
	s.rng.Shuffle(len(cp), func(i, j int) {
		cp[i], cp[j] = cp[j], cp[i]
	})
	if len(cp) > n {
		cp = cp[:n]
	}
	return cp
}
