package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/bikeshare/internal/engine"
	"github.com/balkashynov/bikeshare/internal/logging"
	"github.com/balkashynov/bikeshare/internal/parser"
	"github.com/balkashynov/bikeshare/internal/source"
	"github.com/balkashynov/bikeshare/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show trip statistics for a city",
	Long: `Compute the four trip reports for a city, optionally narrowed to one month
and one day of the week:

  - most frequent times of travel (month, day, start hour)
  - most popular start station, end station and trip
  - total and mean trip duration
  - user types, genders and birth years, where the city records them

Without --city the filter is asked for interactively. After the reports you
can page through the raw trips and start over with another filter.`,
	Example: `  bikeshare stats
  bikeshare stats --city chicago --month june --day friday
  bikeshare stats -c nyc -m all -d all --json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("city", "c", "", "City name, alias or prefix (chicago, new york city, washington)")
	cmd.Flags().StringP("month", "m", "", "Month name, prefix or number 1-12, or all")
	cmd.Flags().StringP("day", "d", "", "Day of week name or prefix, or all")
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("no-ui", false, "Print the reports once without interactive prompts")
}

func runStats(cmd *cobra.Command, args []string) error {
	city, _ := cmd.Flags().GetString("city")
	month, _ := cmd.Flags().GetString("month")
	day, _ := cmd.Flags().GetString("day")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	noUI, _ := cmd.Flags().GetBool("no-ui")

	loader, err := newLoader()
	if err != nil {
		return err
	}

	prefill := tui.FilterPrefill{City: city, Month: month, Day: day}
	if jsonOutput || noUI {
		spec, err := parseFilter(prefill)
		if err != nil {
			return err
		}
		_, summary, err := runSession(loader, spec)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeSummaryJSON(cmd.OutOrStdout(), summary)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSummary(summary))
		return nil
	}

	return interactiveSession(cmd.OutOrStdout(), loader, prefill)
}

// parseFilter resolves command line filter values; month and day default to all
func parseFilter(p tui.FilterPrefill) (engine.FilterSpec, error) {
	if p.City == "" {
		return engine.FilterSpec{}, fmt.Errorf("--city is required with --no-ui or --json")
	}

	city, err := parser.ParseCity(p.City, appConfig.CityChoices())
	if err != nil {
		return engine.FilterSpec{}, err
	}
	spec := engine.FilterSpec{City: city}

	if p.Month != "" {
		if spec.Month, err = parser.ParseMonth(p.Month); err != nil {
			return engine.FilterSpec{}, err
		}
	}
	if p.Day != "" {
		if spec.Day, err = parser.ParseDay(p.Day); err != nil {
			return engine.FilterSpec{}, err
		}
	}
	return spec, nil
}

// runSession loads, derives and filters the city's trips and computes the reports
func runSession(loader source.Loader, spec engine.FilterSpec) (*engine.TripTable, *engine.Summary, error) {
	start := time.Now()
	log := logging.WithCity(spec.City)

	raw, err := loader.Load(spec.City)
	if err != nil {
		return nil, nil, err
	}

	table := engine.Filter(engine.Derive(raw), spec)
	summary := engine.Analyze(table, spec)

	log.Debugw("Reports computed",
		"month", spec.Month.String(),
		"day", spec.Day.String(),
		"trips", table.Len(),
		"time_stats", summary.Time.Elapsed,
		"station_stats", summary.Stations.Elapsed,
		"duration_stats", summary.Duration.Elapsed,
		"user_stats", summary.Users.Elapsed,
		"total", time.Since(start),
	)
	return table, summary, nil
}

// interactiveSession is the wizard -> reports -> raw data -> restart loop
func interactiveSession(out io.Writer, loader source.Loader, prefill tui.FilterPrefill) error {
	for {
		spec, ok, err := tui.RunFilterTUI(appConfig.CityChoices(), prefill)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		// flags only seed the first round
		prefill = tui.FilterPrefill{}

		table, summary, err := runSession(loader, spec)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, tui.RenderSummary(summary))

		if table.Len() > 0 {
			showRaw, err := tui.RunConfirmTUI(fmt.Sprintf("Would you like to see %d lines of raw data?", appConfig.PageSize()), false)
			if err != nil {
				return err
			}
			if showRaw {
				if err := tui.RunPagerTUI(table, appConfig.PageSize()); err != nil {
					return err
				}
			}
		}

		again, err := tui.RunConfirmTUI("Would you like to restart?", false)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

type reportJSON[T any] struct {
	Report    *T      `json:"report,omitempty"`
	Error     string  `json:"error,omitempty"`
	ElapsedMs float64 `json:"elapsed_ms"`
}

func toReportJSON[T any](r engine.Result[T]) reportJSON[T] {
	out := reportJSON[T]{
		Report:    r.Report,
		ElapsedMs: float64(r.Elapsed.Microseconds()) / 1000,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}

// writeSummaryJSON outputs the reports as JSON. Weekdays are numbered from
// Monday=0; sections for columns the city lacks are omitted.
func writeSummaryJSON(w io.Writer, s *engine.Summary) error {
	type summaryJSON struct {
		City     string                            `json:"city"`
		Month    string                            `json:"month"`
		Day      string                            `json:"day"`
		Trips    int                               `json:"trips"`
		Columns  engine.Columns                    `json:"columns"`
		Time     reportJSON[engine.TimeReport]     `json:"time"`
		Stations reportJSON[engine.StationReport]  `json:"stations"`
		Duration reportJSON[engine.DurationReport] `json:"duration"`
		Users    reportJSON[engine.UserReport]     `json:"users"`
	}

	result := summaryJSON{
		City:     s.City,
		Month:    s.Filter.Month.String(),
		Day:      s.Filter.Day.String(),
		Trips:    s.Trips,
		Columns:  s.Columns,
		Time:     toReportJSON(s.Time),
		Stations: toReportJSON(s.Stations),
		Duration: toReportJSON(s.Duration),
		Users:    toReportJSON(s.Users),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

func init() {
	addFilterFlags(statsCmd)
}
