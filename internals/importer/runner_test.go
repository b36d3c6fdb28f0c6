package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

func (widget) TableName() string { return "widgets" }

func openImportDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE widgets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL CHECK (name <> '')
	)`).Error)
	return db
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestReadCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rows.csv",
		"name, short_name\nAlpha, AL \n\"Beta, Inc\",BI\n")

	r := NewRunner(nil, dir, 0, false)

	var rows []Row
	r.readCSV("rows.csv", func(row Row) { rows = append(rows, row) })

	require.Empty(t, r.Errors)
	require.Len(t, rows, 2)
	require.Equal(t, 1, rows[0].Num)
	require.Equal(t, "Alpha", rows[0].Get("name"))
	require.Equal(t, "AL", rows[0].Get("short_name"))
	require.Equal(t, "Beta, Inc", rows[1].Get("name"))
}

func TestReadCSV_MissingFile(t *testing.T) {
	r := NewRunner(nil, t.TempDir(), 0, false)

	called := false
	r.readCSV("absent.csv", func(Row) { called = true })

	require.False(t, called)
	require.Len(t, r.Errors, 1)
	require.Contains(t, r.Errors[0], "file not found")
}

func TestBulkCreate_Batches(t *testing.T) {
	r := NewRunner(openImportDB(t), "", 2, false)

	rows := []widget{
		{ID: "1", Name: "a"},
		{ID: "2", Name: "b"},
		{ID: "3", Name: "c"},
		{ID: "4", Name: "d"},
		{ID: "5", Name: "e"},
	}
	created := bulkCreate(r, "widgets", rows)

	require.Equal(t, 5, created)
	require.Empty(t, r.Errors)

	var count int64
	require.NoError(t, r.DB.Model(&widget{}).Count(&count).Error)
	require.EqualValues(t, 5, count)
}

func TestBulkCreate_ConflictsIgnored(t *testing.T) {
	r := NewRunner(openImportDB(t), "", 10, false)

	bulkCreate(r, "widgets", []widget{{ID: "1", Name: "a"}})
	bulkCreate(r, "widgets", []widget{{ID: "1", Name: "renamed"}, {ID: "2", Name: "b"}})

	require.Empty(t, r.Errors)

	var kept widget
	require.NoError(t, r.DB.First(&kept, "id = ?", "1").Error)
	require.Equal(t, "a", kept.Name, "existing row must not be overwritten")

	var count int64
	require.NoError(t, r.DB.Model(&widget{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestBulkCreate_FailedBatchDoesNotStopRun(t *testing.T) {
	r := NewRunner(openImportDB(t), "", 2, false)

	rows := []widget{
		{ID: "1", Name: "a"},
		{ID: "2", Name: "b"},
		{ID: "3", Name: ""}, // violates the check constraint
		{ID: "4", Name: "d"},
		{ID: "5", Name: "e"},
	}
	created := bulkCreate(r, "widgets", rows)

	// Batch two fails as a unit, batches one and three land.
	require.Equal(t, 3, created)
	require.Len(t, r.Errors, 1)
	require.Contains(t, r.Errors[0], "batch 2 failed")

	var count int64
	require.NoError(t, r.DB.Model(&widget{}).Count(&count).Error)
	require.EqualValues(t, 3, count)
}

func TestSplitPipe(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a|b|c", []string{"a", "b", "c"}},
		{" a | b ", []string{"a", "b"}},
		{"a||b", []string{"a", "b"}},
		{"", []string{}},
		{"solo", []string{"solo"}},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, splitPipe(tc.in), "splitPipe(%q)", tc.in)
	}
}

func TestParseFloat(t *testing.T) {
	v, err := parseFloat("", 12.5)
	require.NoError(t, err)
	require.Equal(t, 12.5, v)

	v, err = parseFloat("99.99", 0)
	require.NoError(t, err)
	require.Equal(t, 99.99, v)

	_, err = parseFloat("abc", 0)
	require.Error(t, err)
}
