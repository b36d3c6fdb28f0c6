package service

import (
	"testing"

	careerModel "careermap_backend/internals/features/assessments/careers/model"
)

func paths(minScores ...int) []careerModel.CareerPathModel {
	out := make([]careerModel.CareerPathModel, 0, len(minScores))
	for _, ms := range minScores {
		out = append(out, careerModel.CareerPathModel{
			CareerPathCareerID: "career-" + string(rune('a'+len(out))),
			CareerPathMinScore: ms,
		})
	}
	return out
}

func TestMatchCareer(t *testing.T) {
	tests := []struct {
		name      string
		minScores []int
		score     int
		wantMin   int
	}{
		{"first threshold above score", []int{40, 60, 75}, 50, 60},
		{"all thresholds met picks highest", []int{40, 60, 75}, 80, 75},
		{"score below everything picks lowest", []int{40, 60, 75}, 10, 40},
		{"exact threshold is met, next wins", []int{40, 60, 75}, 60, 75},
		{"unsorted input handled", []int{75, 40, 60}, 50, 60},
		{"single path", []int{50}, 90, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchCareer(paths(tc.minScores...), tc.score)
			if got == nil {
				t.Fatalf("MatchCareer returned nil")
			}
			if got.CareerPathMinScore != tc.wantMin {
				t.Errorf("matched min_score = %d, want %d", got.CareerPathMinScore, tc.wantMin)
			}
		})
	}
}

func TestMatchCareer_NoPaths(t *testing.T) {
	if got := MatchCareer(nil, 50); got != nil {
		t.Fatalf("MatchCareer(nil) = %+v, want nil", got)
	}
}

func TestMatchCareer_DoesNotMutateInput(t *testing.T) {
	in := paths(75, 40, 60)
	MatchCareer(in, 50)
	if in[0].CareerPathMinScore != 75 {
		t.Fatalf("input slice reordered: %+v", in)
	}
}

func TestConfidenceBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "high"},
		{85, "high"},
		{84, "medium"},
		{70, "medium"},
		{69, "low"},
		{0, "low"},
	}

	for _, tc := range tests {
		if got := ConfidenceBand(tc.score); got != tc.want {
			t.Errorf("ConfidenceBand(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
