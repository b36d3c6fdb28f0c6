package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultBatchSize = 500

// Runner drives one import run. Row-level problems are collected in
// Errors and never stop the run; a failed batch contributes one error
// and the remaining batches still execute.
type Runner struct {
	DB        *gorm.DB
	DataDir   string
	BatchSize int
	Verbose   bool

	Errors  []string
	Created int
	Skipped int
}

func NewRunner(db *gorm.DB, dataDir string, batchSize int, verbose bool) *Runner {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Runner{DB: db, DataDir: dataDir, BatchSize: batchSize, Verbose: verbose}
}

func (r *Runner) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.Errors = append(r.Errors, msg)
	log.Printf("[IMPORT] ERROR %s", msg)
}

func (r *Runner) infof(format string, args ...interface{}) {
	log.Printf("[IMPORT] "+format, args...)
}

func (r *Runner) debugf(format string, args ...interface{}) {
	if r.Verbose {
		log.Printf("[IMPORT] "+format, args...)
	}
}

// Row is one CSV record keyed by header name, plus its 1-based data row
// number for error messages.
type Row struct {
	Num    int
	Fields map[string]string
}

func (row Row) Get(key string) string {
	return strings.TrimSpace(row.Fields[key])
}

// readCSV streams name.csv from the data dir through fn. A missing file
// is one recorded error, not a failure.
func (r *Runner) readCSV(name string, fn func(Row)) {
	path := filepath.Join(r.DataDir, name)
	f, err := os.Open(path)
	if err != nil {
		r.errorf("%s: file not found", name)
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		r.errorf("%s: cannot read header: %v", name, err)
		return
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	num := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		num++
		if err != nil {
			r.errorf("%s row %d: %v", name, num, err)
			continue
		}
		fields := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(record) {
				fields[h] = record[i]
			}
		}
		fn(Row{Num: num, Fields: fields})
	}
	r.debugf("%s: read %d rows", name, num)
}

// bulkCreate inserts rows in fixed-size batches, each batch one
// transaction with conflicting rows ignored. Returns the number of rows
// handed to successful batches.
func bulkCreate[T any](r *Runner, label string, rows []T) int {
	created := 0
	for start := 0; start < len(rows); start += r.BatchSize {
		end := start + r.BatchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]
		err := r.DB.Transaction(func(tx *gorm.DB) error {
			return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&batch).Error
		})
		if err != nil {
			r.errorf("%s: batch %d failed: %v", label, start/r.BatchSize+1, err)
			continue
		}
		created += len(batch)
	}
	r.Created += created
	return created
}

// Summary logs the run totals and the first errors, mirroring the
// operator-facing report of the bulk tooling this replaces.
func (r *Runner) Summary() {
	r.infof(strings.Repeat("=", 60))
	if len(r.Errors) == 0 {
		r.infof("import completed successfully with no errors")
		return
	}
	r.infof("import completed with %d errors", len(r.Errors))
	show := r.Errors
	if len(show) > 20 {
		show = show[:20]
	}
	for _, e := range show {
		r.infof("  %s", e)
	}
	if len(r.Errors) > 20 {
		r.infof("  ... and %d more errors", len(r.Errors)-20)
	}
}
