package engine

// RawPageSize is the number of raw records shown per block
const RawPageSize = 5

// Page returns up to size records starting at offset, in table order. It keeps
// no state; callers track the offset. A non-positive size means RawPageSize.
func Page(t *TripTable, offset, size int) []*TripRecord {
	if size <= 0 {
		size = RawPageSize
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= t.Len() {
		return nil
	}
	end := min(offset+size, t.Len())
	return t.Records[offset:end]
}
