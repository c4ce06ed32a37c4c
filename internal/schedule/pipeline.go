package schedule

import (
	"sort"
	"strings"
)

// FilterAndSort derives a view of items: keep decides membership, less orders
// the survivors, and ascending flips the direction. The sort is stable, so
// items comparing equal keep their input order, and the input slice is never
// touched.
func FilterAndSort[T any](items []T, keep func(T) bool, less func(a, b T) bool, ascending bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}

	if less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			if ascending {
				return less(out[i], out[j])
			}
			return less(out[j], out[i])
		})
	}

	return out
}

// MatchesSearch is the shared case-insensitive substring test used by list
// endpoints. An empty query matches everything.
func MatchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
