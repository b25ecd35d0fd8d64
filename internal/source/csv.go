package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/balkashynov/bikeshare/internal/engine"
	"github.com/balkashynov/bikeshare/internal/parser"
)

// Column keys after header normalisation ("Start Time" -> "start_time")
const (
	colStartTime    = "start_time"
	colDuration     = "trip_duration"
	colStartStation = "start_station"
	colEndStation   = "end_station"
	colUserType     = "user_type"
	colGender       = "gender"
	colBirthYear    = "birth_year"
)

var requiredColumns = []string{colStartTime, colDuration, colStartStation, colEndStation}

// Values outside these bounds are treated as missing
const (
	maxDurationSeconds = 365 * 24 * 60 * 60
	minBirthYear       = 1800
	maxBirthYear       = 2100
)

// Stats describes one load
type Stats struct {
	Rows         int // data rows read
	Dropped      int // rows skipped for an unparsable start time or no stations
	BadStartTime int // rows among Dropped whose start time did not parse
}

// ReadCSV reads a city's trips from delimited text with a header row.
// Rows whose start time cannot be parsed are dropped and counted; a missing
// required column, broken CSV or a file with no parsable start time at all
// fails the whole read.
func ReadCSV(r io.Reader, city string) (*engine.TripTable, Stats, error) {
	var stats Stats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, stats, fmt.Errorf("%w: failed to read CSV headers: %v", engine.ErrDataSource, err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[toSnakeCase(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, stats, fmt.Errorf("%w: missing column %q", engine.ErrDataSource, col)
		}
	}

	table := &engine.TripTable{City: city}
	_, table.Columns.UserType = index[colUserType]
	_, table.Columns.Gender = index[colGender]
	_, table.Columns.BirthYear = index[colBirthYear]

	field := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("%w: %v", engine.ErrDataSource, err)
		}
		stats.Rows++

		start, err := parser.ParseStartTime(field(row, colStartTime))
		if err != nil {
			stats.Dropped++
			stats.BadStartTime++
			continue
		}

		rec := &engine.TripRecord{
			StartTime:       start,
			DurationSeconds: parseDuration(field(row, colDuration)),
			StartStation:    field(row, colStartStation),
			EndStation:      field(row, colEndStation),
			UserType:        field(row, colUserType),
			Gender:          field(row, colGender),
			BirthYear:       parseBirthYear(field(row, colBirthYear)),
		}
		if rec.StartStation == "" && rec.EndStation == "" {
			stats.Dropped++
			continue
		}

		table.Records = append(table.Records, rec)
	}

	if stats.Rows > 0 && stats.BadStartTime == stats.Rows {
		return nil, stats, fmt.Errorf("%w: no parsable start times in %d rows", engine.ErrDataSource, stats.Rows)
	}

	return table, stats, nil
}

// parseDuration returns nil for empty, non-numeric, negative or implausibly
// long values. Fractional seconds are truncated.
func parseDuration(val string) *int64 {
	if val == "" {
		return nil
	}
	if n, err := strconv.ParseInt(val, 10, 64); err == nil {
		if n < 0 || n > maxDurationSeconds {
			return nil
		}
		return &n
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f >= maxDurationSeconds+1 {
		return nil
	}
	n := int64(math.Trunc(f))
	return &n
}

// parseBirthYear accepts "1985" and "1985.0" within minBirthYear..maxBirthYear
func parseBirthYear(val string) *int {
	if val == "" {
		return nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(f) || f < minBirthYear || f >= maxBirthYear+1 {
		return nil
	}
	y := int(f)
	return &y
}

// toSnakeCase converts "Column Name" -> "column_name"
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
