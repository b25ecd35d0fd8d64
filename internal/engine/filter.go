package engine

// MonthSelector restricts a table to one calendar month. The zero value
// selects every month.
type MonthSelector struct {
	month int
}

// AnyMonth applies no month filter
var AnyMonth = MonthSelector{}

// OnlyMonth selects month m, 1=January. Out of range values select every month.
func OnlyMonth(m int) MonthSelector {
	if m < 1 || m > 12 {
		return AnyMonth
	}
	return MonthSelector{month: m}
}

// Value returns the selected month and whether a month is selected
func (s MonthSelector) Value() (int, bool) {
	return s.month, s.month != 0
}

func (s MonthSelector) String() string {
	if m, ok := s.Value(); ok {
		return MonthName(m)
	}
	return "all"
}

// DaySelector restricts a table to one weekday. The zero value selects every day.
type DaySelector struct {
	day Weekday
	set bool
}

// AnyDay applies no weekday filter
var AnyDay = DaySelector{}

// OnlyDay selects weekday d using the Monday=0 numbering
func OnlyDay(d Weekday) DaySelector {
	if !d.Valid() {
		return AnyDay
	}
	return DaySelector{day: d, set: true}
}

// Value returns the selected weekday and whether a day is selected
func (s DaySelector) Value() (Weekday, bool) {
	return s.day, s.set
}

func (s DaySelector) String() string {
	if d, ok := s.Value(); ok {
		return d.String()
	}
	return "all"
}

// FilterSpec describes one query: the city plus optional month and weekday
type FilterSpec struct {
	City  string
	Month MonthSelector
	Day   DaySelector
}

// Filter narrows a derived table to the records matching spec. Both dimensions
// are checked in a single pass and source order is kept. The result shares its
// records with the input; with no selector set the input table itself is returned.
func Filter(t *TripTable, spec FilterSpec) *TripTable {
	month, byMonth := spec.Month.Value()
	day, byDay := spec.Day.Value()
	if !byMonth && !byDay {
		return t
	}

	records := make([]*TripRecord, 0, len(t.Records))
	for _, r := range t.Records {
		if byMonth && r.Month != month {
			continue
		}
		if byDay && r.Weekday != day {
			continue
		}
		records = append(records, r)
	}
	return t.view(records)
}
