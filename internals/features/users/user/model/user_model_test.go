package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestProfileCompletion(t *testing.T) {
	empty := &UserModel{}
	if got := empty.ProfileCompletion(); got != 0 {
		t.Errorf("empty profile completion = %d, want 0", got)
	}

	email := "s@example.com"
	partial := &UserModel{
		FullName: "Student",
		Email:    &email,
		Mobile:   "9876543210",
		Gender:   "female",
	}
	if got := partial.ProfileCompletion(); got != 50 {
		t.Errorf("partial profile completion = %d, want 50", got)
	}

	id := uuid.New()
	full := &UserModel{
		FullName:  "Student",
		Email:     &email,
		Mobile:    "9876543210",
		Gender:    "female",
		CollegeID: &id,
		BranchID:  &id,
		CityID:    &id,
		StateID:   &id,
	}
	if got := full.ProfileCompletion(); got != 100 {
		t.Errorf("full profile completion = %d, want 100", got)
	}
}
