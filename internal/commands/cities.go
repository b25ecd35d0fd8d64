package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/bikeshare/internal/db"
	"github.com/balkashynov/bikeshare/internal/models"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the configured cities",
	Long:  `List each configured city with its aliases, CSV file and, when present, its import into the trip store.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		imported, err := importedDatasets()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-15s %-10s %-30s %s\n", "CITY", "ALIASES", "FILE", "IMPORTED")
		fmt.Fprintln(out, strings.Repeat("-", 80))

		for _, c := range appConfig.Cities() {
			status := "-"
			if d, ok := imported[c.Name]; ok {
				status = fmt.Sprintf("%d trips, %s", d.Trips, d.ImportedAt.Format("2006-01-02 15:04"))
			}

			file := appConfig.CityPath(c)
			if _, err := os.Stat(file); err != nil {
				file += " (missing)"
			}

			fmt.Fprintf(out, "%-15s %-10s %-30s %s\n", c.Name, strings.Join(c.Aliases, ","), file, status)
		}
		fmt.Fprintf(out, "\nSource: %s\n", appConfig.Source())
		return nil
	},
}

// importedDatasets reads import metadata without creating the trip store
func importedDatasets() (map[string]models.Dataset, error) {
	if _, err := os.Stat(appConfig.Database()); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err := initDB(); err != nil {
		return nil, err
	}

	datasets, err := db.ListDatasets()
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	byCity := make(map[string]models.Dataset, len(datasets))
	for _, d := range datasets {
		byCity[d.City] = d
	}
	return byCity, nil
}
