package engine

import (
	"fmt"
	"math"
)

// TimeReport holds the most frequent times of travel
type TimeReport struct {
	Month        int     `json:"month"`
	MonthTrips   int     `json:"month_trips"`
	Weekday      Weekday `json:"weekday"`
	WeekdayTrips int     `json:"weekday_trips"`
	Hour         int     `json:"hour"`
	HourTrips    int     `json:"hour_trips"`
}

// StationReport holds the most popular stations and trip
type StationReport struct {
	StartStation string `json:"start_station"`
	StartTrips   int    `json:"start_trips"`
	EndStation   string `json:"end_station"`
	EndTrips     int    `json:"end_trips"`
	Trip         string `json:"trip"`
	TripCount    int    `json:"trip_count"`
}

// HMS is a duration split into whole hours, minutes and seconds. Hours are not
// wrapped at 24.
type HMS struct {
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// SplitSeconds converts a number of seconds to hours, minutes and seconds
func SplitSeconds(total int64) HMS {
	return HMS{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

func (h HMS) String() string {
	return fmt.Sprintf("%d hours, %d minutes, %d seconds", h.Hours, h.Minutes, h.Seconds)
}

// DurationReport holds total and mean trip duration over trips with a duration.
// The mean is truncated to whole seconds before it is split.
type DurationReport struct {
	Trips        int     `json:"trips"`
	TotalSeconds int64   `json:"total_seconds"`
	MeanSeconds  float64 `json:"mean_seconds"`
	Total        HMS     `json:"total"`
	Mean         HMS     `json:"mean"`
}

// BirthYearStats summarises the non-missing birth years
type BirthYearStats struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

// UserReport holds rider demographics. A section is nil when the city's source
// has no such column.
type UserReport struct {
	UserTypes  []Count         `json:"user_types,omitempty"`
	Genders    []Count         `json:"genders,omitempty"`
	BirthYears *BirthYearStats `json:"birth_years,omitempty"`
}

// TimeStats computes the most common month, weekday and start hour
func TimeStats(t *TripTable) (*TimeReport, error) {
	if t.Len() == 0 {
		return nil, fmt.Errorf("time stats: %w", ErrEmptyTable)
	}

	months := make(map[int]int)
	days := make(map[Weekday]int)
	hours := make(map[int]int)
	for _, r := range t.Records {
		months[r.Month]++
		days[r.Weekday]++
		hours[r.Hour]++
	}

	report := &TimeReport{}
	report.Month, report.MonthTrips, _ = mode(months)
	report.Weekday, report.WeekdayTrips, _ = mode(days)
	report.Hour, report.HourTrips, _ = mode(hours)
	return report, nil
}

// StationStats computes the most common start station, end station and trip
func StationStats(t *TripTable) (*StationReport, error) {
	if t.Len() == 0 {
		return nil, fmt.Errorf("station stats: %w", ErrEmptyTable)
	}

	starts := make(map[string]int)
	ends := make(map[string]int)
	pairs := make(map[string]int)
	for _, r := range t.Records {
		starts[r.StartStation]++
		ends[r.EndStation]++
		pairs[r.StationPair]++
	}

	report := &StationReport{}
	report.StartStation, report.StartTrips, _ = mode(starts)
	report.EndStation, report.EndTrips, _ = mode(ends)
	report.Trip, report.TripCount, _ = mode(pairs)
	return report, nil
}

// DurationStats computes total and mean travel time. Missing durations are
// left out of both the sum and the mean.
func DurationStats(t *TripTable) (*DurationReport, error) {
	var total int64
	var trips int
	for _, r := range t.Records {
		if r.DurationSeconds == nil {
			continue
		}
		total += *r.DurationSeconds
		trips++
	}
	if trips == 0 {
		return nil, fmt.Errorf("duration stats: %w", ErrEmptyTable)
	}

	mean := float64(total) / float64(trips)
	return &DurationReport{
		Trips:        trips,
		TotalSeconds: total,
		MeanSeconds:  mean,
		Total:        SplitSeconds(total),
		Mean:         SplitSeconds(int64(math.Trunc(mean))),
	}, nil
}

// UserStats counts user types and genders and summarises birth years, for
// whichever of those columns the city has.
func UserStats(t *TripTable) (*UserReport, error) {
	if t.Len() == 0 {
		return nil, fmt.Errorf("user stats: %w", ErrEmptyTable)
	}

	report := &UserReport{}

	if t.Columns.UserType {
		counts := make(map[string]int)
		for _, r := range t.Records {
			if r.UserType != "" {
				counts[r.UserType]++
			}
		}
		report.UserTypes = rankCounts(counts)
	}

	if t.Columns.Gender {
		counts := make(map[string]int)
		for _, r := range t.Records {
			if r.Gender != "" {
				counts[r.Gender]++
			}
		}
		report.Genders = rankCounts(counts)
	}

	if t.Columns.BirthYear {
		report.BirthYears = birthYearStats(t.Records)
	}

	return report, nil
}

// birthYearStats returns nil when no record has a birth year
func birthYearStats(records []*TripRecord) *BirthYearStats {
	years := make(map[int]int)
	var stats BirthYearStats
	for _, r := range records {
		if r.BirthYear == nil {
			continue
		}
		y := *r.BirthYear
		if len(years) == 0 || y < stats.Earliest {
			stats.Earliest = y
		}
		if len(years) == 0 || y > stats.MostRecent {
			stats.MostRecent = y
		}
		years[y]++
	}

	common, _, ok := mode(years)
	if !ok {
		return nil
	}
	stats.MostCommon = common
	return &stats
}
