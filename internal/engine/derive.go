package engine

// PairSeparator joins start and end station in a station pair key
const PairSeparator = "→"

// Derive returns a copy of the table with month, weekday, hour and station pair
// filled in on every record. The input table is left untouched and deriving an
// already derived table gives the same values.
func Derive(t *TripTable) *TripTable {
	records := make([]*TripRecord, len(t.Records))
	for i, r := range t.Records {
		d := *r
		d.Month = int(r.StartTime.Month())
		d.Weekday = WeekdayOf(r.StartTime)
		d.Hour = r.StartTime.Hour()
		d.StationPair = StationPair(r.StartStation, r.EndStation)
		records[i] = &d
	}
	return t.view(records)
}

// StationPair builds the key used for "most common trip"
func StationPair(start, end string) string {
	return start + PairSeparator + end
}
