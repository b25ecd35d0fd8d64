package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/bikeshare/internal/db"
	"github.com/balkashynov/bikeshare/internal/logging"
	"github.com/balkashynov/bikeshare/internal/parser"
	"github.com/balkashynov/bikeshare/internal/source"
)

var importCmd = &cobra.Command{
	Use:   "import <city>...",
	Short: "Import city CSV files into the SQLite trip store",
	Long: `Parse each city's CSV file and store its trips in the SQLite trip store,
replacing any earlier import of that city. Set "source: sqlite" in
bikeshare.yml to load imported trips instead of reading the CSV files.`,
	Example: `  bikeshare import chicago
  bikeshare import chg nyc wa`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initDB(); err != nil {
			return err
		}

		csv := &source.CSVLoader{Config: appConfig}
		for _, arg := range args {
			city, err := parser.ParseCity(arg, appConfig.CityChoices())
			if err != nil {
				return err
			}

			start := time.Now()
			table, stats, err := csv.LoadWithStats(city)
			if err != nil {
				return err
			}

			dataset, rows := source.ToRows(table)
			c, _ := appConfig.City(city)
			dataset.SourceFile = appConfig.CityPath(c)
			dataset.Dropped = stats.Dropped

			if err := db.ReplaceCityTrips(dataset, rows); err != nil {
				logging.Error("Import failed", "city", city, "trips", len(rows), "error", err)
				return fmt.Errorf("failed to import %s: %w", city, err)
			}

			logging.Info("Imported city", "city", city, "trips", len(rows), "dropped", stats.Dropped, "took", time.Since(start))
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported %d trips for %s", len(rows), city)
			if stats.Dropped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%d rows skipped)", stats.Dropped)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}
