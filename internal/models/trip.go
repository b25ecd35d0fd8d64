package models

import (
	"time"
)

// TripRow is one imported trip record
type TripRow struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	City            string    `gorm:"index;not null" json:"city"`
	StartTime       time.Time `gorm:"not null" json:"start_time"`
	DurationSeconds *int64    `json:"duration_seconds"` // nil when missing
	StartStation    string    `gorm:"not null" json:"start_station"`
	EndStation      string    `gorm:"not null" json:"end_station"`
	UserType        string    `json:"user_type"`
	Gender          string    `json:"gender"`
	BirthYear       *int      `json:"birth_year"`
}

// Dataset describes the trips imported for one city
type Dataset struct {
	City       string    `gorm:"primaryKey" json:"city"`
	SourceFile string    `json:"source_file"`
	Trips      int       `json:"trips"`
	Dropped    int       `json:"dropped"` // rows skipped for an unparsable start time
	ImportedAt time.Time `json:"imported_at"`

	// Optional columns present in the source
	HasUserType  bool `gorm:"default:false" json:"has_user_type"`
	HasGender    bool `gorm:"default:false" json:"has_gender"`
	HasBirthYear bool `gorm:"default:false" json:"has_birth_year"`
}
