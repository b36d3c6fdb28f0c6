package service

import (
	"sort"

	careerModel "careermap_backend/internals/features/assessments/careers/model"
)

// MatchCareer walks career paths by ascending min_score and returns the
// first one whose threshold exceeds the score, the track to aim for next.
// When every threshold is met, the highest one wins. No paths → nil, which
// downstream treats as a valid "no career" result.
func MatchCareer(paths []careerModel.CareerPathModel, score int) *careerModel.CareerPathModel {
	if len(paths) == 0 {
		return nil
	}
	sorted := append([]careerModel.CareerPathModel(nil), paths...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CareerPathMinScore < sorted[j].CareerPathMinScore
	})
	for i := range sorted {
		if sorted[i].CareerPathMinScore > score {
			return &sorted[i]
		}
	}
	return &sorted[len(sorted)-1]
}

// ConfidenceBand buckets the combined score for display.
func ConfidenceBand(score int) string {
	switch {
	case score >= 85:
		return "high"
	case score >= ScoreFloor:
		return "medium"
	default:
		return "low"
	}
}
