package importer

import (
	"strconv"

	"gorm.io/gorm/clause"

	coreModel "careermap_backend/internals/features/core/model"
)

// RunDegrees upserts the degree catalogue keyed by name.
func (r *Runner) RunDegrees() {
	const file = "degrees.csv"
	r.infof("--- importing degrees from %s ---", file)

	created := 0
	skipped := 0

	r.readCSV(file, func(row Row) {
		name := row.Get("name")
		if name == "" {
			r.errorf("degrees row %d: missing name", row.Num)
			skipped++
			return
		}

		isTech, _ := strconv.ParseBool(row.Get("is_tech"))
		degree := coreModel.DegreeModel{
			Name:     name,
			FullName: row.Get("full_name"),
			Category: row.Get("category"),
			IsTech:   isTech,
		}

		err := r.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "category", "is_tech"}),
		}).Create(&degree).Error
		if err != nil {
			r.errorf("degrees row %d: %v", row.Num, err)
			skipped++
			return
		}
		created++
	})

	r.Created += created
	r.Skipped += skipped
	r.infof("degrees: %d imported, %d skipped", created, skipped)
	r.Summary()
}
