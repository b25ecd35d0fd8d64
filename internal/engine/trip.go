package engine

import (
	"errors"
	"time"
)

var (
	// ErrDataSource is returned when a city's backing source is missing, unreadable or malformed
	ErrDataSource = errors.New("data source error")

	// ErrEmptyTable is returned when a report is requested over zero eligible records
	ErrEmptyTable = errors.New("no records to aggregate")
)

// TripRecord is one bike-share ride. Records are never modified after loading;
// the derived fields are filled in on a copy by Derive.
type TripRecord struct {
	StartTime       time.Time
	DurationSeconds *int64 // nil when missing or invalid
	StartStation    string
	EndStation      string
	UserType        string // empty when missing
	Gender          string // empty when missing
	BirthYear       *int   // nil when missing

	// Derived fields
	Month       int     // 1-12
	Weekday     Weekday // Monday=0 ... Sunday=6
	Hour        int     // 0-23
	StationPair string
}

// Columns records which optional columns the city's source carries
type Columns struct {
	UserType  bool `json:"user_type"`
	Gender    bool `json:"gender"`
	BirthYear bool `json:"birth_year"`
}

// TripTable is an ordered set of trips for one city, in source order.
type TripTable struct {
	City    string
	Columns Columns
	Records []*TripRecord
}

// Len returns the number of records in the table
func (t *TripTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// view returns a table over the given records sharing the city metadata
func (t *TripTable) view(records []*TripRecord) *TripTable {
	return &TripTable{
		City:    t.City,
		Columns: t.Columns,
		Records: records,
	}
}
