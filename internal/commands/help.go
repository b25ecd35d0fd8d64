package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for bikeshare",
	Long:  `Display detailed help for all bikeshare commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), helpText)
	},
}

const helpText = `
      __o
    _ \<,_
   (_)/ (_)

bikeshare - US bike share trip explorer

COMMANDS:

  stats                   Trip reports for one city (default command)
    -c, --city            City name, alias or prefix (chicago|chg, new york city|nyc, washington|wa)
    -m, --month           all, january-december (or a prefix), or 1-12
    -d, --day             all, monday-sunday (or a prefix)
    --json                JSON output
    --no-ui               Print the reports once, no prompts

    Reports:
      Times of travel     Most common month, day of week and start hour
      Stations            Most common start station, end station and trip
      Trip duration       Total and mean travel time
      Users               User types, genders and birth years

    Interactive session:
      The filter is asked for step by step; invalid input is asked again.
      After the reports you can page through the raw trips 5 at a time
      and restart with another filter.

    Example:
      bikeshare stats -c chicago -m june -d fri

  raw                     Print raw trip records in source order
    -c, --city            City (required)
    -m, --month           Month filter
    -d, --day             Day filter
    --offset              First record to print
    -l, --limit           Number of records (default page_size)
    -i, --interactive     Page through the records

  import <city>...        Load city CSV files into the SQLite trip store
  cities                  List configured cities and imports
  version                 Show version information
  help                    Show this help

GLOBAL FLAGS:

  --config                Config file (default ./bikeshare.yml)
  -v, --verbose           Debug logging on stderr

CONFIG (bikeshare.yml):

  data_dir: ./data        Directory holding the city CSV files
  source: csv             csv or sqlite
  database: ~/.bikeshare/bikeshare.db
  page_size: 5
  cities:
    - name: chicago
      file: chicago.csv
      aliases: [chg]

`
