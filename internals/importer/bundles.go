package importer

import (
	"strconv"
	"time"

	"gorm.io/gorm/clause"

	coreModel "careermap_backend/internals/features/core/model"
	courseModel "careermap_backend/internals/features/courses/model"
)

// RunBundles upserts course bundles keyed by career_title and links each
// bundle to the degrees named in its pipe-separated degrees cell.
func (r *Runner) RunBundles(files []string) {
	if len(files) == 0 {
		files = []string{"course_bundles_arts_commerce.csv", "course_bundles_engineering.csv"}
	}

	created := 0
	skipped := 0

	for _, file := range files {
		r.infof("--- importing bundles from %s ---", file)

		r.readCSV(file, func(row Row) {
			careerTitle := row.Get("career_title")
			if careerTitle == "" {
				r.errorf("bundles row %d (%s): missing career_title", row.Num, file)
				skipped++
				return
			}

			nextBatch, err := time.Parse("2006-01-02", row.Get("next_batch_date"))
			if err != nil {
				r.errorf("bundles row %d (%s): invalid next_batch_date", row.Num, file)
				skipped++
				return
			}
			originalPrice, err := parseFloat(row.Get("original_price"), 0)
			if err != nil {
				r.errorf("bundles row %d (%s): invalid original_price", row.Num, file)
				skipped++
				return
			}
			discountedPrice, err := parseFloat(row.Get("discounted_price"), 0)
			if err != nil {
				r.errorf("bundles row %d (%s): invalid discounted_price", row.Num, file)
				skipped++
				return
			}
			initialSalary, _ := strconv.Atoi(row.Get("initial_salary"))

			bundle := courseModel.CourseBundleModel{
				CareerTitle:     careerTitle,
				SkillsRequired:  row.Get("skills_required"),
				Duration:        row.Get("duration"),
				OriginalPrice:   originalPrice,
				DiscountedPrice: discountedPrice,
				NextBatchDate:   nextBatch,
				InitialSalary:   initialSalary,
				IsActive:        true,
			}

			err = r.DB.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "career_title"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"skills_required", "duration", "original_price",
					"discounted_price", "next_batch_date", "initial_salary", "is_active",
				}),
			}).Create(&bundle).Error
			if err != nil {
				r.errorf("bundles row %d (%s): %v", row.Num, file, err)
				skipped++
				return
			}

			// The upsert path does not report the surviving primary key,
			// re-read by the natural key before linking degrees.
			if err := r.DB.Where("career_title = ?", careerTitle).First(&bundle).Error; err != nil {
				r.errorf("bundles row %d (%s): reload failed: %v", row.Num, file, err)
				skipped++
				return
			}

			if names := splitPipe(row.Get("degrees")); len(names) > 0 {
				var degrees []coreModel.DegreeModel
				if err := r.DB.Where("name IN ?", names).Find(&degrees).Error; err != nil {
					r.errorf("bundles row %d (%s): degree lookup failed: %v", row.Num, file, err)
				} else if len(degrees) > 0 {
					if err := r.DB.Model(&bundle).Association("Degrees").Append(&degrees); err != nil {
						r.errorf("bundles row %d (%s): degree link failed: %v", row.Num, file, err)
					}
				}
			}
			created++
		})
	}

	r.Created += created
	r.Skipped += skipped
	r.infof("bundles: %d imported, %d skipped", created, skipped)
	r.Summary()
}
