package engine

import (
	"cmp"
	"sort"
)

// Count is one value of a categorical column and how often it occurs
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// mode returns the most frequent key. Ties go to the lowest key so the answer
// never depends on map iteration order. ok is false for an empty map.
func mode[K cmp.Ordered](counts map[K]int) (key K, n int, ok bool) {
	for k, c := range counts {
		if !ok || c > n || (c == n && k < key) {
			key, n, ok = k, c, true
		}
	}
	return key, n, ok
}

// rankCounts orders value counts by descending count, then ascending value
func rankCounts(counts map[string]int) []Count {
	ranked := make([]Count, 0, len(counts))
	for v, c := range counts {
		ranked = append(ranked, Count{Value: v, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Value < ranked[j].Value
	})
	return ranked
}
