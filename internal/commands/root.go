package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/bikeshare/internal/config"
	"github.com/balkashynov/bikeshare/internal/db"
	"github.com/balkashynov/bikeshare/internal/logging"
	"github.com/balkashynov/bikeshare/internal/source"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile   string
	verbose   bool
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bikeshare trip data",
	Long: `bikeshare answers questions about bike share trips in Chicago, New York City
and Washington: when people ride, where they start and end, how long they ride
and who they are. Run it without a command to start an interactive session.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		db.Close()
		logging.Close()
	},
	RunE: runStats,
}

// setup initializes logging and loads the configuration. A trip store left
// open by an earlier failed run is closed first.
func setup(cmd *cobra.Command, args []string) error {
	db.Close()

	if err := logging.Init(os.Getenv("BIKESHARE_ENV"), verbose); err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	logging.Debug("Configuration loaded",
		"file", cfgFile,
		"source", cfg.Source(),
		"cities", len(cfg.Cities()),
	)
	return nil
}

// initDB opens the trip store named in the configuration
func initDB() error {
	if db.DB != nil {
		return nil
	}
	if err := db.Initialize(appConfig.Database()); err != nil {
		return fmt.Errorf("failed to open trip store: %w", err)
	}
	return nil
}

// newLoader returns the configured loader, opening the trip store if it reads from it
func newLoader() (source.Loader, error) {
	if appConfig.Source() == config.SourceSQLite {
		if err := initDB(); err != nil {
			return nil, err
		}
	}
	return source.New(appConfig), nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	defer logging.Close()
	defer db.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./bikeshare.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	addFilterFlags(rootCmd)

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(rawCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
