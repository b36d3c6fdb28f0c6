package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSkillGaps(t *testing.T) {
	accuracy := map[string]int{
		"python": 55,
		"sql":    60,
		"excel":  100,
	}
	required := []string{"python", "sql", "excel", "communication"}

	gaps := SkillGaps(required, accuracy)

	// 55 < 60 is a gap, 60 exactly is not, missing data is a gap.
	want := []string{"python", "communication"}
	if len(gaps) != len(want) {
		t.Fatalf("gaps = %v, want %v", gaps, want)
	}
	for i := range want {
		if gaps[i] != want[i] {
			t.Fatalf("gaps = %v, want %v", gaps, want)
		}
	}
}

func TestSkillGaps_NoRequiredSkills(t *testing.T) {
	gaps := SkillGaps(nil, map[string]int{"python": 10})
	if len(gaps) != 0 {
		t.Fatalf("gaps = %v, want empty", gaps)
	}
}

func openRecommenderDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE courses (
		id TEXT PRIMARY KEY,
		title TEXT,
		slug TEXT,
		is_active BOOLEAN
	)`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE course_skills (
		id TEXT PRIMARY KEY,
		course_id TEXT,
		skill_tag TEXT
	)`).Error)

	seed := []string{
		`INSERT INTO courses VALUES ('c1', 'Python Basics', 'python-basics', true)`,
		`INSERT INTO courses VALUES ('c2', 'Full Stack', 'full-stack', true)`,
		`INSERT INTO courses VALUES ('c3', 'Retired Course', 'retired-course', false)`,
		`INSERT INTO course_skills VALUES ('s1', 'c1', 'python')`,
		`INSERT INTO course_skills VALUES ('s2', 'c2', 'python')`,
		`INSERT INTO course_skills VALUES ('s3', 'c2', 'sql')`,
		`INSERT INTO course_skills VALUES ('s4', 'c3', 'python')`,
	}
	for _, stmt := range seed {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func TestRecommendCourses(t *testing.T) {
	db := openRecommenderDB(t)

	courses, err := RecommendCourses(db, []string{"python", "sql"})
	require.NoError(t, err)

	// c2 covers both gaps but appears once; the inactive c3 is excluded.
	require.Equal(t, []CourseRef{
		{Title: "Full Stack", Slug: "full-stack"},
		{Title: "Python Basics", Slug: "python-basics"},
	}, courses)
}

func TestRecommendCourses_NoGaps(t *testing.T) {
	db := openRecommenderDB(t)

	courses, err := RecommendCourses(db, nil)
	require.NoError(t, err)
	require.Empty(t, courses)
}

func TestRecommendCourses_UnresolvableSkill(t *testing.T) {
	db := openRecommenderDB(t)

	courses, err := RecommendCourses(db, []string{"quantum-computing"})
	require.NoError(t, err)
	require.Empty(t, courses)
}
