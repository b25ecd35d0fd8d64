package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/bikeshare/internal/engine"
	"github.com/balkashynov/bikeshare/internal/tui"
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Print raw trip records",
	Long: `Print the filtered trip records in source order, starting at --offset.
With --interactive the records are paged through in blocks instead.`,
	Example: `  bikeshare raw --city chicago --limit 5
  bikeshare raw -c wa -m march --offset 10 --limit 5
  bikeshare raw -c nyc -i`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		city, _ := cmd.Flags().GetString("city")
		month, _ := cmd.Flags().GetString("month")
		day, _ := cmd.Flags().GetString("day")
		offset, _ := cmd.Flags().GetInt("offset")
		limit, _ := cmd.Flags().GetInt("limit")
		interactive, _ := cmd.Flags().GetBool("interactive")

		if offset < 0 {
			return fmt.Errorf("--offset must not be negative")
		}

		spec, err := parseFilter(tui.FilterPrefill{City: city, Month: month, Day: day})
		if err != nil {
			return err
		}

		loader, err := newLoader()
		if err != nil {
			return err
		}
		raw, err := loader.Load(spec.City)
		if err != nil {
			return err
		}
		table := engine.Filter(engine.Derive(raw), spec)

		if interactive {
			return tui.RunPagerTUI(table, appConfig.PageSize())
		}

		if limit <= 0 {
			limit = appConfig.PageSize()
		}
		records := engine.Page(table, offset, limit)
		if len(records) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No records at offset %d (%d trips match).\n", offset, table.Len())
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderRecords(table.Columns, records, offset, 0))
		fmt.Fprintf(cmd.OutOrStdout(), "Rows %d-%d of %d\n", offset+1, offset+len(records), table.Len())
		return nil
	},
}

func init() {
	rawCmd.Flags().StringP("city", "c", "", "City name, alias or prefix (required)")
	rawCmd.Flags().StringP("month", "m", "", "Month name, prefix or number 1-12, or all")
	rawCmd.Flags().StringP("day", "d", "", "Day of week name or prefix, or all")
	rawCmd.Flags().Int("offset", 0, "Index of the first record to print")
	rawCmd.Flags().IntP("limit", "l", 0, "Number of records to print (default page_size)")
	rawCmd.Flags().BoolP("interactive", "i", false, "Page through the records")
}
