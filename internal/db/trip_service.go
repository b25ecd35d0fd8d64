package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/bikeshare/internal/models"
)

// ErrNotImported is returned when a city has no dataset in the trip store
var ErrNotImported = errors.New("city has not been imported")

const insertBatchSize = 500

// ReplaceCityTrips stores a city's trips, replacing any earlier import.
// Rows keep the order they are given in; the caller's slice is not modified.
func ReplaceCityTrips(dataset models.Dataset, rows []models.TripRow) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	dataset.Trips = len(rows)
	if dataset.ImportedAt.IsZero() {
		dataset.ImportedAt = time.Now()
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("city = ?", dataset.City).Delete(&models.TripRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear trips for %s: %w", dataset.City, err)
		}

		batch := make([]models.TripRow, len(rows))
		for i, row := range rows {
			row.ID = 0
			row.City = dataset.City
			batch[i] = row
		}
		if len(batch) > 0 {
			if err := tx.CreateInBatches(batch, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert trips: %w", err)
			}
		}

		if err := tx.Where("city = ?", dataset.City).Delete(&models.Dataset{}).Error; err != nil {
			return fmt.Errorf("failed to clear dataset for %s: %w", dataset.City, err)
		}
		if err := tx.Create(&dataset).Error; err != nil {
			return fmt.Errorf("failed to save dataset: %w", err)
		}
		return nil
	})
}

// GetDataset returns the import metadata for a city
func GetDataset(city string) (*models.Dataset, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	var dataset models.Dataset
	err := DB.Where("city = ?", city).First(&dataset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", city, ErrNotImported)
	}
	if err != nil {
		return nil, err
	}
	return &dataset, nil
}

// GetCityTrips returns a city's trips in import order
func GetCityTrips(city string) ([]models.TripRow, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	var rows []models.TripRow
	err := DB.Where("city = ?", city).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListDatasets returns every imported city, by name
func ListDatasets() ([]models.Dataset, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	var datasets []models.Dataset
	if err := DB.Order("city ASC").Find(&datasets).Error; err != nil {
		return nil, err
	}
	return datasets, nil
}
