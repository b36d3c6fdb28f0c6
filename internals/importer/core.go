package importer

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	coreModel "careermap_backend/internals/features/core/model"
)

// RunCore loads the location and college lookup tables.
func (r *Runner) RunCore(clear bool) {
	if clear {
		r.infof("clearing existing core data...")
		for _, t := range []interface{}{
			&coreModel.CityStateModel{},
			&coreModel.CityModel{},
			&coreModel.StateModel{},
		} {
			if err := r.DB.Where("1 = 1").Delete(t).Error; err != nil {
				r.errorf("clear: %v", err)
				return
			}
		}
	}

	r.importCityStates()
	r.importColleges()
	r.importBranches()

	r.Summary()
}

// importCityStates reads the positional export (city_id, city name,
// state_id, state name). The file repeats the "name" header so it cannot
// go through the keyed reader.
func (r *Runner) importCityStates() {
	const file = "city_states.csv"
	r.infof("--- importing city/state mappings from %s ---", file)

	path := filepath.Join(r.DataDir, file)
	f, err := os.Open(path)
	if err != nil {
		r.errorf("%s: file not found", file)
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		r.errorf("%s: cannot read header: %v", file, err)
		return
	}

	uniqueStates := map[string]bool{}
	uniqueCities := map[string]bool{}
	type pair struct{ city, state string }
	var pairs []pair
	seenPair := map[pair]bool{}

	num := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		num++
		if err != nil {
			r.errorf("%s row %d: %v", file, num, err)
			continue
		}
		if len(record) < 4 {
			r.errorf("%s row %d: expected 4 columns", file, num)
			continue
		}
		city := strings.TrimSpace(record[1])
		state := strings.TrimSpace(record[3])
		if city == "" || state == "" {
			continue
		}
		uniqueStates[state] = true
		uniqueCities[city] = true
		p := pair{city, state}
		if !seenPair[p] {
			seenPair[p] = true
			pairs = append(pairs, p)
		}
	}
	r.infof("%s: %d rows, %d states, %d cities, %d pairs",
		file, num, len(uniqueStates), len(uniqueCities), len(pairs))

	var states []coreModel.StateModel
	for name := range uniqueStates {
		states = append(states, coreModel.StateModel{Name: name})
	}
	bulkCreate(r, "states", states)

	var cities []coreModel.CityModel
	for name := range uniqueCities {
		cities = append(cities, coreModel.CityModel{Name: name})
	}
	bulkCreate(r, "cities", cities)

	// Reload ids, the conflict-ignored rows keep their original keys.
	stateID := map[string]uuid.UUID{}
	var allStates []coreModel.StateModel
	if err := r.DB.Find(&allStates).Error; err != nil {
		r.errorf("%s: reload states failed: %v", file, err)
		return
	}
	for _, s := range allStates {
		stateID[s.Name] = s.ID
	}

	cityID := map[string]uuid.UUID{}
	var allCities []coreModel.CityModel
	if err := r.DB.Find(&allCities).Error; err != nil {
		r.errorf("%s: reload cities failed: %v", file, err)
		return
	}
	for _, c := range allCities {
		cityID[c.Name] = c.ID
	}

	var links []coreModel.CityStateModel
	for _, p := range pairs {
		cid, okCity := cityID[p.city]
		sid, okState := stateID[p.state]
		if !okCity || !okState {
			r.errorf("%s: unresolved pair %s / %s", file, p.city, p.state)
			continue
		}
		links = append(links, coreModel.CityStateModel{CityID: cid, StateID: sid})
	}
	created := bulkCreate(r, "city_states", links)
	r.infof("city/state mappings: %d created", created)
}

func (r *Runner) importColleges() {
	const file = "colleges.csv"
	r.infof("--- importing colleges from %s ---", file)

	created := 0
	skipped := 0

	r.readCSV(file, func(row Row) {
		name := row.Get("name")
		if name == "" {
			skipped++
			return
		}

		college := coreModel.CollegeModel{Name: name, ShortName: row.Get("short_name")}
		err := r.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "short_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"short_name"}),
		}).Create(&college).Error
		if err != nil {
			r.errorf("colleges row %d: %v", row.Num, err)
			skipped++
			return
		}
		created++
	})

	r.Created += created
	r.Skipped += skipped
	r.infof("colleges: %d imported, %d skipped", created, skipped)
}

func (r *Runner) importBranches() {
	const file = "branches.csv"
	r.infof("--- importing branches from %s ---", file)

	var toCreate []coreModel.BranchModel
	skipped := 0

	r.readCSV(file, func(row Row) {
		name := row.Get("name")
		if name == "" {
			skipped++
			return
		}
		toCreate = append(toCreate, coreModel.BranchModel{
			Name:      name,
			ShortName: row.Get("short_name"),
		})
	})

	created := bulkCreate(r, "branches", toCreate)
	r.Skipped += skipped
	r.infof("branches: %d imported, %d skipped", created, skipped)
}
