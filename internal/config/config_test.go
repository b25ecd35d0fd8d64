package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Source() != SourceCSV {
		t.Errorf("Source = %q, want csv", cfg.Source())
	}
	if cfg.PageSize() != 5 {
		t.Errorf("PageSize = %d, want 5", cfg.PageSize())
	}
	if len(cfg.Cities()) != 3 {
		t.Fatalf("expected 3 built-in cities, got %d", len(cfg.Cities()))
	}

	city, ok := cfg.City("new york city")
	if !ok || city.File != "new_york_city.csv" {
		t.Errorf("new york city = %+v, %v", city, ok)
	}
}

func TestCitiesReturnsCopy(t *testing.T) {
	cfg := Default()
	cities := cfg.Cities()
	cities[0].Name = "gotham"

	if _, ok := cfg.City("chicago"); !ok {
		t.Error("modifying the returned slice changed the config")
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
data_dir: /srv/bikeshare
source: sqlite
database: /tmp/trips.db
page_size: 10
cities:
  - name: Chicago
    file: chicago.csv
    aliases: [chg]
  - name: boston
    file: /data/boston.csv
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Source() != SourceSQLite || cfg.Database() != "/tmp/trips.db" || cfg.PageSize() != 10 {
		t.Errorf("unexpected config: %+v", cfg.app)
	}

	chicago, ok := cfg.City("chicago")
	if !ok {
		t.Fatal("city names should be lower-cased")
	}
	if got := cfg.CityPath(chicago); got != filepath.Join("/srv/bikeshare", "chicago.csv") {
		t.Errorf("CityPath(chicago) = %q", got)
	}

	boston, _ := cfg.City("boston")
	if got := cfg.CityPath(boston); got != "/data/boston.csv" {
		t.Errorf("absolute file should be kept, got %q", got)
	}

	choices := cfg.CityChoices()
	if len(choices) != 2 || choices[0].Aliases[0] != "chg" {
		t.Errorf("CityChoices = %+v", choices)
	}
}

func TestParseConfigValidation(t *testing.T) {
	tests := map[string]string{
		"bad source":        "source: postgres\n",
		"negative page":     "page_size: -1\n",
		"city without file": "cities:\n  - name: chicago\n",
		"duplicate alias":   "cities:\n  - {name: a, file: a.csv, aliases: [x]}\n  - {name: b, file: b.csv, aliases: [x]}\n",
		"broken yaml":       "cities: [\n",
	}
	for name, data := range tests {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing default file should fall back to defaults: %v", err)
	}
	if len(cfg.Cities()) != 3 {
		t.Errorf("expected built-in cities, got %d", len(cfg.Cities()))
	}

	if _, err := Load("does-not-exist.yml"); err == nil {
		t.Error("an explicit missing path should fail")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bikeshare.yml")
	if err := os.WriteFile(path, []byte("page_size: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PageSize() != 3 {
		t.Errorf("PageSize = %d, want 3", cfg.PageSize())
	}
}
