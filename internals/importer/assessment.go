package importer

import (
	"strconv"
	"strings"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	careerModel "careermap_backend/internals/features/assessments/careers/model"
	questionModel "careermap_backend/internals/features/assessments/questions/model"
	courseModel "careermap_backend/internals/features/courses/model"
	helper "careermap_backend/internals/helpers"
)

// RunAssessment loads the question bank, career paths and the course
// catalogue from the data dir. File order matters: courses must exist
// before their skill mappings resolve.
func (r *Runner) RunAssessment(clear bool) {
	r.infof("starting assessment data import (batch size %d)", r.BatchSize)

	if clear {
		r.clearAssessmentData()
	}

	r.importQuestions()
	r.importCareers()
	r.importCareerSkills()
	r.importCourses()
	r.importCourseSkills()

	r.Summary()
}

// clearAssessmentData removes rows dependents-first so foreign keys
// never block the truncation.
func (r *Runner) clearAssessmentData() {
	r.infof("clearing existing data...")
	tables := []interface{}{
		&courseModel.CourseSkillModel{},
		&courseModel.EnrollmentModel{},
		&courseModel.CourseModel{},
		&careerModel.CareerPathModel{},
		&questionModel.QuestionModel{},
	}
	for _, t := range tables {
		if err := r.DB.Where("1 = 1").Delete(t).Error; err != nil {
			r.errorf("clear: %v", err)
			return
		}
	}
	r.infof("existing data cleared")
}

func (r *Runner) importQuestions() {
	const file = "assessment_questions.csv"
	r.infof("--- importing questions from %s ---", file)

	var toCreate []questionModel.QuestionModel
	skipped := 0

	r.readCSV(file, func(row Row) {
		text := row.Get("question_text")
		if text == "" {
			r.errorf("questions row %d: missing question_text", row.Num)
			skipped++
			return
		}

		options := map[string]string{
			"A": row.Get("option_a"),
			"B": row.Get("option_b"),
			"C": row.Get("option_c"),
			"D": row.Get("option_d"),
		}
		for _, v := range options {
			if v == "" {
				r.errorf("questions row %d: missing one or more options", row.Num)
				skipped++
				return
			}
		}

		correct := strings.ToUpper(row.Get("correct_option"))
		if _, ok := options[correct]; !ok {
			r.errorf("questions row %d: invalid correct_option %q", row.Num, correct)
			skipped++
			return
		}

		difficulty := strings.ToLower(row.Get("difficulty"))
		if !questionModel.ValidDifficulty(difficulty) {
			difficulty = questionModel.DifficultyMedium
		}

		toCreate = append(toCreate, questionModel.QuestionModel{
			QuestionText:          text,
			QuestionOptions:       options,
			QuestionCorrectOption: correct,
			QuestionCategory:      questionModel.CategoryTechnical,
			QuestionSkillTag:      row.Get("skill_tag"),
			QuestionDifficulty:    difficulty,
		})
	})

	created := bulkCreate(r, "questions", toCreate)
	r.Skipped += skipped
	r.infof("questions: %d created, %d skipped", created, skipped)
}

func (r *Runner) importCareers() {
	const file = "careers.csv"
	r.infof("--- importing careers from %s ---", file)

	var toCreate []careerModel.CareerPathModel
	skipped := 0

	r.readCSV(file, func(row Row) {
		careerID := row.Get("career_id")
		title := row.Get("career_title")
		if careerID == "" || title == "" {
			r.errorf("careers row %d: missing career_id or career_title", row.Num)
			skipped++
			return
		}

		minScore, err := strconv.Atoi(row.Get("min_score"))
		if err != nil {
			r.errorf("careers row %d: invalid min_score", row.Num)
			skipped++
			return
		}

		toCreate = append(toCreate, careerModel.CareerPathModel{
			CareerPathCareerID:       careerID,
			CareerPathTitle:          title,
			CareerPathDescription:    row.Get("career_description"),
			CareerPathMinScore:       minScore,
			CareerPathRequiredSkills: pq.StringArray{},
		})
	})

	created := bulkCreate(r, "careers", toCreate)
	r.Skipped += skipped
	r.infof("careers: %d created, %d skipped", created, skipped)
}

// importCareerSkills folds the skill rows into each career's
// required_skills array.
func (r *Runner) importCareerSkills() {
	const file = "career_required_skills.csv"
	r.infof("--- importing career skills from %s ---", file)

	skills := map[string][]string{}
	var order []string

	r.readCSV(file, func(row Row) {
		careerID := row.Get("career_id")
		skillTag := row.Get("skill_tag")
		if careerID == "" || skillTag == "" {
			r.errorf("career skills row %d: missing career_id or skill_tag", row.Num)
			return
		}
		if _, seen := skills[careerID]; !seen {
			order = append(order, careerID)
		}
		skills[careerID] = append(skills[careerID], skillTag)
	})

	updated := 0
	for _, careerID := range order {
		res := r.DB.Model(&careerModel.CareerPathModel{}).
			Where("career_path_career_id = ?", careerID).
			Update("career_path_required_skills", pq.StringArray(skills[careerID]))
		if res.Error != nil {
			r.errorf("career skills: update %s failed: %v", careerID, res.Error)
			continue
		}
		if res.RowsAffected == 0 {
			r.errorf("career skills: career not found: %s", careerID)
			continue
		}
		updated++
	}
	r.infof("career skills: %d careers updated", updated)
}

func (r *Runner) importCourses() {
	const file = "course_bundles.csv"
	r.infof("--- importing courses from %s ---", file)

	var toCreate []courseModel.CourseModel
	skipped := 0
	seenSlugs := map[string]bool{}

	r.readCSV(file, func(row Row) {
		title := row.Get("course_title")
		if title == "" {
			r.errorf("courses row %d: missing course_title", row.Num)
			skipped++
			return
		}

		slug := row.Get("slug")
		if slug == "" {
			generated, err := helper.GenerateUniqueSlug(r.DB, "courses", "slug", title)
			if err != nil {
				r.errorf("courses row %d: slug generation failed: %v", row.Num, err)
				skipped++
				return
			}
			slug = generated
		}
		if seenSlugs[slug] {
			r.errorf("courses row %d: duplicate slug %q", row.Num, slug)
			skipped++
			return
		}
		seenSlugs[slug] = true

		price, err := parseFloat(row.Get("price"), 0)
		if err != nil {
			r.errorf("courses row %d: invalid price", row.Num)
			skipped++
			return
		}
		originalPrice, err := parseFloat(row.Get("original_price_inr"), price)
		if err != nil {
			r.errorf("courses row %d: invalid price", row.Num)
			skipped++
			return
		}

		level := row.Get("level")
		if level == "" {
			level = "Beginner"
		}

		toCreate = append(toCreate, courseModel.CourseModel{
			Title:            title,
			Slug:             slug,
			ShortDescription: row.Get("short_description"),
			Description:      row.Get("description"),
			Duration:         row.Get("duration"),
			Price:            price,
			OriginalPriceINR: originalPrice,
			Level:            level,
			Language:         datatypes.JSONSlice[string]{"English"},
			ProgramsIncluded: datatypes.JSONSlice[string](splitPipe(row.Get("programs_included"))),
			IdealFor:         datatypes.JSONSlice[string](splitPipe(row.Get("ideal_for"))),
			JobRoles:         datatypes.JSONSlice[string](splitPipe(row.Get("job_roles"))),
			IsActive:         true,
		})
	})

	created := bulkCreate(r, "courses", toCreate)
	r.Skipped += skipped
	r.infof("courses: %d created, %d skipped", created, skipped)
}

// importCourseSkills resolves the mapping file's course_id through the
// bundle CSV's slug column, then to the stored course row.
func (r *Runner) importCourseSkills() {
	const file = "course_skill_mapping.csv"
	r.infof("--- importing course skills from %s ---", file)

	idToSlug := map[string]string{}
	r.readCSV("course_bundles.csv", func(row Row) {
		idToSlug[row.Get("course_id")] = row.Get("slug")
	})

	var courses []courseModel.CourseModel
	if err := r.DB.Select("id, slug").Find(&courses).Error; err != nil {
		r.errorf("course skills: loading courses failed: %v", err)
		return
	}
	bySlug := make(map[string]courseModel.CourseModel, len(courses))
	for _, c := range courses {
		bySlug[c.Slug] = c
	}

	var toCreate []courseModel.CourseSkillModel
	skipped := 0

	r.readCSV(file, func(row Row) {
		courseID := row.Get("course_id")
		skillTag := row.Get("skill_tag")
		if courseID == "" || skillTag == "" {
			r.errorf("course skills row %d: missing course_id or skill_tag", row.Num)
			skipped++
			return
		}

		slug := idToSlug[courseID]
		course, ok := bySlug[slug]
		if slug == "" || !ok {
			r.errorf("course skills row %d: course not found for id %s", row.Num, courseID)
			skipped++
			return
		}

		coverage := strings.ToLower(row.Get("coverage_level"))
		if coverage == "" {
			coverage = courseModel.CoverageBasic
		}

		toCreate = append(toCreate, courseModel.CourseSkillModel{
			CourseID:      course.ID,
			SkillTag:      skillTag,
			CoverageLevel: coverage,
		})
	})

	created := bulkCreate(r, "course skills", toCreate)
	r.Skipped += skipped
	r.infof("course skills: %d created, %d skipped", created, skipped)
}

func parseFloat(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

// splitPipe parses the pipe-separated list cells used by the catalogue
// CSVs.
func splitPipe(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, "|") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
