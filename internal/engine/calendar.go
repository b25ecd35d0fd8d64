package engine

import (
	"strconv"
	"strings"
	"time"
)

// Weekday numbers days from Monday=0 to Sunday=6. Both the derived weekday
// field and the day filter use this numbering.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var dayNames = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// MonthNames returns the lower-case month names, January first
func MonthNames() []string {
	names := monthNames
	return names[:]
}

// DayNames returns the lower-case day names, Monday first
func DayNames() []string {
	names := dayNames
	return names[:]
}

// WeekdayOf converts a time to the Monday-first numbering
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Valid reports whether d is one of the seven days
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return titleCase(dayNames[d])
}

// MonthName returns the capitalised name of month m (1-12)
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return "unknown"
	}
	return titleCase(monthNames[m-1])
}

// ClockHour formats an hour of day on a 12-hour clock, e.g. "5 P.M."
func ClockHour(hour int) string {
	switch {
	case hour == 0:
		return "12 A.M."
	case hour < 12:
		return strconv.Itoa(hour) + " A.M."
	case hour == 12:
		return "12 P.M."
	default:
		return strconv.Itoa(hour-12) + " P.M."
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
