package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/balkashynov/bikeshare/internal/engine"
	"github.com/balkashynov/bikeshare/internal/parser"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = "bikeshare.yml"

var defaultCities = []City{
	{Name: "chicago", File: "chicago.csv", Aliases: []string{"chg"}},
	{Name: "new york city", File: "new_york_city.csv", Aliases: []string{"nyc"}},
	{Name: "washington", File: "washington.csv", Aliases: []string{"wa"}},
}

// Config is loaded once at startup and only read afterwards
type Config struct {
	app AppConfig
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := AppConfig{}
	applyDefaults(&cfg)
	return &Config{app: cfg}
}

// Load reads and validates the YAML file at path. An empty path tries
// DefaultFile and falls back to the built-in configuration when it is absent.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates YAML configuration
func Parse(data []byte) (*Config, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	applyDefaults(&cfg)
	if err := checkCityNames(cfg.Cities); err != nil {
		return nil, err
	}
	return &Config{app: cfg}, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Source == "" {
		cfg.Source = SourceCSV
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = engine.RawPageSize
	}
	if cfg.Database == "" {
		cfg.Database = defaultDatabasePath()
	}
	if len(cfg.Cities) == 0 {
		cfg.Cities = append([]City(nil), defaultCities...)
	}
	for i := range cfg.Cities {
		cfg.Cities[i].Name = strings.ToLower(strings.TrimSpace(cfg.Cities[i].Name))
	}
}

// checkCityNames rejects a name or alias used by more than one city
func checkCityNames(cities []City) error {
	seen := make(map[string]string)
	for _, c := range cities {
		keys := append([]string{c.Name}, c.Aliases...)
		for _, k := range keys {
			k = strings.ToLower(strings.TrimSpace(k))
			if other, ok := seen[k]; ok && other != c.Name {
				return fmt.Errorf("invalid config: '%s' is used by both %s and %s", k, other, c.Name)
			}
			seen[k] = c.Name
		}
	}
	return nil
}

// defaultDatabasePath returns ~/.bikeshare/bikeshare.db, or a relative path
// when the home directory is unknown
func defaultDatabasePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".bikeshare", "bikeshare.db")
	}
	return filepath.Join(homeDir, ".bikeshare", "bikeshare.db")
}

// Source returns the configured backing source kind
func (c *Config) Source() string { return c.app.Source }

// Database returns the SQLite trip store path
func (c *Config) Database() string { return c.app.Database }

// PageSize returns the raw record block size
func (c *Config) PageSize() int { return c.app.PageSize }

// Cities returns a copy of the configured cities
func (c *Config) Cities() []City {
	return append([]City(nil), c.app.Cities...)
}

// City looks up a city by its canonical name
func (c *Config) City(name string) (City, bool) {
	for _, city := range c.app.Cities {
		if city.Name == name {
			return city, true
		}
	}
	return City{}, false
}

// CityPath returns the CSV path for a city, resolved against data_dir
func (c *Config) CityPath(city City) string {
	if filepath.IsAbs(city.File) || c.app.DataDir == "" {
		return city.File
	}
	return filepath.Join(c.app.DataDir, city.File)
}

// CityChoices returns the cities in the form the input parser resolves against
func (c *Config) CityChoices() []parser.Choice {
	choices := make([]parser.Choice, len(c.app.Cities))
	for i, city := range c.app.Cities {
		choices[i] = parser.Choice{Name: city.Name, Aliases: city.Aliases}
	}
	return choices
}
