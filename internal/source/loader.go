package source

import (
	"fmt"
	"os"

	"github.com/balkashynov/bikeshare/internal/config"
	"github.com/balkashynov/bikeshare/internal/db"
	"github.com/balkashynov/bikeshare/internal/engine"
	"github.com/balkashynov/bikeshare/internal/logging"
	"github.com/balkashynov/bikeshare/internal/models"
)

// Loader reads one city's raw trips into a table. Failures wrap engine.ErrDataSource.
type Loader interface {
	Load(city string) (*engine.TripTable, error)
}

// New returns the loader for the configured source kind
func New(cfg *config.Config) Loader {
	if cfg.Source() == config.SourceSQLite {
		return &StoreLoader{}
	}
	return &CSVLoader{Config: cfg}
}

// CSVLoader reads the city's CSV file named in the configuration
type CSVLoader struct {
	Config *config.Config
}

// Load opens and parses the city's CSV file
func (l *CSVLoader) Load(city string) (*engine.TripTable, error) {
	table, _, err := l.LoadWithStats(city)
	return table, err
}

// LoadWithStats is Load plus row and drop counts
func (l *CSVLoader) LoadWithStats(city string) (*engine.TripTable, Stats, error) {
	c, ok := l.Config.City(city)
	if !ok {
		return nil, Stats{}, fmt.Errorf("%w: unknown city %q", engine.ErrDataSource, city)
	}
	path := l.Config.CityPath(c)

	log := logging.WithCity(city)
	log.Debugw("Loading trips", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %v", engine.ErrDataSource, err)
	}
	defer f.Close()

	table, stats, err := ReadCSV(f, city)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}

	if stats.Dropped > 0 {
		logging.Warn("Dropped unusable trip rows", "city", city, "path", path, "dropped", stats.Dropped, "rows", stats.Rows)
	}
	log.Infow("Loaded trips", "path", path, "records", table.Len())
	return table, stats, nil
}

// StoreLoader reads trips previously imported into the SQLite trip store.
// The store must be initialized with db.Initialize.
type StoreLoader struct{}

// Load reads the city's imported trips in import order
func (l *StoreLoader) Load(city string) (*engine.TripTable, error) {
	dataset, err := db.GetDataset(city)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrDataSource, err)
	}

	rows, err := db.GetCityTrips(city)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrDataSource, err)
	}

	logging.WithCity(city).Infow("Loaded trips from store", "records", len(rows), "imported_at", dataset.ImportedAt)
	return FromRows(*dataset, rows), nil
}

// FromRows converts stored rows back into a trip table
func FromRows(dataset models.Dataset, rows []models.TripRow) *engine.TripTable {
	table := &engine.TripTable{
		City: dataset.City,
		Columns: engine.Columns{
			UserType:  dataset.HasUserType,
			Gender:    dataset.HasGender,
			BirthYear: dataset.HasBirthYear,
		},
		Records: make([]*engine.TripRecord, len(rows)),
	}
	for i, row := range rows {
		table.Records[i] = &engine.TripRecord{
			StartTime:       row.StartTime,
			DurationSeconds: row.DurationSeconds,
			StartStation:    row.StartStation,
			EndStation:      row.EndStation,
			UserType:        row.UserType,
			Gender:          row.Gender,
			BirthYear:       row.BirthYear,
		}
	}
	return table
}

// ToRows converts a loaded table into rows for the trip store
func ToRows(table *engine.TripTable) (models.Dataset, []models.TripRow) {
	dataset := models.Dataset{
		City:         table.City,
		Trips:        table.Len(),
		HasUserType:  table.Columns.UserType,
		HasGender:    table.Columns.Gender,
		HasBirthYear: table.Columns.BirthYear,
	}

	rows := make([]models.TripRow, len(table.Records))
	for i, r := range table.Records {
		rows[i] = models.TripRow{
			City:            table.City,
			StartTime:       r.StartTime,
			DurationSeconds: r.DurationSeconds,
			StartStation:    r.StartStation,
			EndStation:      r.EndStation,
			UserType:        r.UserType,
			Gender:          r.Gender,
			BirthYear:       r.BirthYear,
		}
	}
	return dataset, rows
}
