package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"careermap_backend/internals/configs"
	database "careermap_backend/internals/databases"
	"careermap_backend/internals/importer"
)

var (
	dataDir   string
	batchSize int
	clearData bool
	verbose   bool
)

func newRunner() *importer.Runner {
	configs.LoadEnv()
	database.ConnectDB()
	return importer.NewRunner(database.DB, dataDir, batchSize, verbose)
}

func main() {
	root := &cobra.Command{
		Use:   "importctl",
		Short: "Bulk CSV import tooling for the careermap backend",
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory holding the CSV files")
	root.PersistentFlags().IntVar(&batchSize, "batch-size", importer.DefaultBatchSize, "rows per insert batch")
	root.PersistentFlags().BoolVar(&clearData, "clear", false, "clear existing rows before import")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "assessment",
			Short: "Import questions, careers, and the course catalogue",
			Run: func(cmd *cobra.Command, args []string) {
				newRunner().RunAssessment(clearData)
			},
		},
		&cobra.Command{
			Use:   "degrees",
			Short: "Upsert the degree catalogue from degrees.csv",
			Run: func(cmd *cobra.Command, args []string) {
				newRunner().RunDegrees()
			},
		},
		&cobra.Command{
			Use:   "bundles [files...]",
			Short: "Upsert course bundles and their degree links",
			Run: func(cmd *cobra.Command, args []string) {
				newRunner().RunBundles(args)
			},
		},
		&cobra.Command{
			Use:   "core",
			Short: "Import city/state mappings, colleges, and branches",
			Run: func(cmd *cobra.Command, args []string) {
				newRunner().RunCore(clearData)
			},
		},
	)

	if err := root.Execute(); err != nil {
		log.Printf("importctl: %v", err)
		os.Exit(1)
	}
}
