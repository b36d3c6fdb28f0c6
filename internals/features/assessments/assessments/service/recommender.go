package service

import (
	"gorm.io/gorm"
)

// SkillGaps returns the required skills whose raw accuracy is strictly
// below the gap threshold. A skill with no recorded technical answers has
// no demonstrated proficiency and counts as a gap.
func SkillGaps(required []string, accuracy map[string]int) []string {
	gaps := []string{}
	for _, skill := range required {
		acc, ok := accuracy[skill]
		if !ok || acc < SkillGapThreshold {
			gaps = append(gaps, skill)
		}
	}
	return gaps
}

// RecommendCourses lists active courses covering any of the gap skills
// (OR semantics, deduplicated by course). A gap skill no course covers is
// simply not represented in the output; that is a valid terminal state.
func RecommendCourses(db *gorm.DB, gaps []string) ([]CourseRef, error) {
	if len(gaps) == 0 {
		return []CourseRef{}, nil
	}

	var rows []CourseRef
	err := db.Table("courses").
		Select("DISTINCT courses.title AS title, courses.slug AS slug").
		Joins("JOIN course_skills ON course_skills.course_id = courses.id").
		Where("courses.is_active = ?", true).
		Where("course_skills.skill_tag IN ?", gaps).
		Order("slug").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []CourseRef{}
	}
	return rows, nil
}
