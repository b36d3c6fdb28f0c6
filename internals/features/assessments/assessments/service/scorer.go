package service

import (
	aModel "careermap_backend/internals/features/assessments/assessments/model"
	qModel "careermap_backend/internals/features/assessments/questions/model"
)

const (
	// ScoreFloor is a product rule: a one-way clamp that never lowers a
	// score above it, only raises scores below it.
	ScoreFloor = 70

	// SkillGapThreshold applies to raw per-skill accuracy, not the floored
	// display score.
	SkillGapThreshold = 60
)

// Supplemental traits appended for tech-track profiles.
const (
	TraitTechnicalProficiency = "Technical Proficiency"
	TraitProblemSolving       = "Problem Solving"
)

type CategoryBreakdown struct {
	Correct    int `json:"correct"`
	Answered   int `json:"answered"`
	RawPercent int `json:"raw_percent"`
	Percent    int `json:"percent"`
}

type CareerMatch struct {
	CareerID    string `json:"career_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MinScore    int    `json:"min_score"`
}

type CourseRef struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// ResultData is the payload persisted on the assessment at completion.
type ResultData struct {
	Score              int                          `json:"score"`
	ConfidenceBand     string                       `json:"confidence_band"`
	Categories         map[string]CategoryBreakdown `json:"categories"`
	Traits             []string                     `json:"traits"`
	SkillAccuracy      map[string]int               `json:"skill_accuracy"`
	Career             *CareerMatch                 `json:"career,omitempty"`
	SkillGaps          []string                     `json:"skill_gaps"`
	RecommendedCourses []CourseRef                  `json:"recommended_courses"`
}

// Score aggregates recorded responses against the answer key. Only answered
// questions count toward any denominator; unanswered entries of the fixed
// order are ignored.
func Score(questions []qModel.QuestionModel, responses []aModel.UserResponseModel) ResultData {
	byID := make(map[string]qModel.QuestionModel, len(questions))
	for _, q := range questions {
		byID[q.QuestionID.String()] = q
	}

	categories := map[string]CategoryBreakdown{
		qModel.CategoryTechnical:    {},
		qModel.CategoryAptitude:     {},
		qModel.CategoryPsychometric: {},
	}
	skillCorrect := map[string]int{}
	skillAnswered := map[string]int{}
	traits := []string{}

	for _, r := range responses {
		q, ok := byID[r.UserResponseQuestionID.String()]
		if !ok {
			continue
		}

		cb := categories[q.QuestionCategory]
		cb.Answered++

		switch q.QuestionCategory {
		case qModel.CategoryTechnical, qModel.CategoryAptitude:
			correct := r.UserResponseSelectedOption == q.QuestionCorrectOption
			if correct {
				cb.Correct++
			}
			if q.QuestionCategory == qModel.CategoryTechnical && q.QuestionSkillTag != "" {
				skillAnswered[q.QuestionSkillTag]++
				if correct {
					skillCorrect[q.QuestionSkillTag]++
				}
			}
		case qModel.CategoryPsychometric:
			// No correct answer; selected options map to trait labels.
			// Duplicates are kept on purpose.
			if trait, ok := q.QuestionTraitMap[r.UserResponseSelectedOption]; ok && trait != "" {
				traits = append(traits, trait)
			}
		}
		categories[q.QuestionCategory] = cb
	}

	for cat, cb := range categories {
		if cat == qModel.CategoryPsychometric {
			categories[cat] = cb
			continue
		}
		if cb.Answered > 0 {
			cb.RawPercent = cb.Correct * 100 / cb.Answered
			cb.Percent = floorScore(cb.RawPercent)
		}
		categories[cat] = cb
	}

	tech := categories[qModel.CategoryTechnical]
	apt := categories[qModel.CategoryAptitude]

	score := 0
	if pooled := tech.Answered + apt.Answered; pooled > 0 {
		score = floorScore((tech.Correct + apt.Correct) * 100 / pooled)
	}

	if tech.Answered > 0 {
		traits = appendMissing(traits, TraitTechnicalProficiency, TraitProblemSolving)
	}

	skillAccuracy := make(map[string]int, len(skillAnswered))
	for tag, answered := range skillAnswered {
		skillAccuracy[tag] = skillCorrect[tag] * 100 / answered
	}

	return ResultData{
		Score:          score,
		ConfidenceBand: ConfidenceBand(score),
		Categories:     categories,
		Traits:         traits,
		SkillAccuracy:  skillAccuracy,
	}
}

func floorScore(raw int) int {
	if raw < ScoreFloor {
		return ScoreFloor
	}
	return raw
}

func appendMissing(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, have := range list {
			if have == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}
