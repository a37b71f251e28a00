// Package sorter orders listings by name, size, or modification time.
package sorter

import (
	"sort"

	"github.com/harrison/lsx/internal/models"
)

// Sort orders entries in place by the given key and returns the slice.
// The sort is stable: beyond the documented tie-breaks, equal keys keep
// their relative input order, so sorting an already-sorted listing is a
// no-op.
//
// Orderings:
//   - SortByName: ascending lexicographic (byte order) by name.
//   - SortBySize: ascending by size in bytes, ties broken by name.
//   - SortByDate: ascending by modification time; entries with an unknown
//     timestamp sort last; ties broken by name.
//
// An unknown key falls back to name order.
func Sort(entries []models.Entry, key models.SortKey) []models.Entry {
	sort.SliceStable(entries, less(entries, key))
	return entries
}

func less(entries []models.Entry, key models.SortKey) func(i, j int) bool {
	switch key {
	case models.SortBySize:
		return func(i, j int) bool {
			if entries[i].SizeBytes != entries[j].SizeBytes {
				return entries[i].SizeBytes < entries[j].SizeBytes
			}
			return entries[i].Name < entries[j].Name
		}
	case models.SortByDate:
		return func(i, j int) bool {
			a, b := &entries[i], &entries[j]
			switch {
			case a.ModifiedKnown() != b.ModifiedKnown():
				// Unknown timestamps sort after known ones.
				return a.ModifiedKnown()
			case a.Modified.Equal(b.Modified):
				return a.Name < b.Name
			default:
				return a.Modified.Before(b.Modified)
			}
		}
	default:
		return func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		}
	}
}
