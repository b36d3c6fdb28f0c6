package model

import "testing"

func TestBundleSkillsList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Python;SQL;Excel", []string{"Python", "SQL", "Excel"}},
		{" Python ; SQL ", []string{"Python", "SQL"}},
		{"Python;;SQL", []string{"Python", "SQL"}},
		{"", []string{}},
	}

	for _, tc := range tests {
		b := &CourseBundleModel{SkillsRequired: tc.in}
		got := b.SkillsList()
		if len(got) != len(tc.want) {
			t.Errorf("SkillsList(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("SkillsList(%q) = %v, want %v", tc.in, got, tc.want)
				break
			}
		}
	}
}
