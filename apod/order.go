package apod

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// SortOrder controls how a list of entries is ordered.
type SortOrder string

const (
	SortDefault    SortOrder = "default"
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// SortOrders lists the accepted values, for completions and help.
func SortOrders() []string {
	return []string{string(SortDefault), string(SortAscending), string(SortDescending)}
}

// ParseSortOrder is case-insensitive. Unknown values map to SortDefault.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortAscending:
		return SortAscending
	case SortDescending:
		return SortDescending
	default:
		return SortDefault
	}
}

// Sort orders entries in place by date. SortDefault keeps the received order.
func Sort(entries []*Entry, order SortOrder) {
	switch order {
	case SortAscending:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Date < entries[j].Date
		})
	case SortDescending:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Date > entries[j].Date
		})
	}
}

// Search returns the entries whose title contains term, ignoring case.
func Search(entries []*Entry, term string) []*Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return entries
	}

	return lo.Filter(entries, func(e *Entry, _ int) bool {
		return strings.Contains(strings.ToLower(e.Title), term)
	})
}

// Dedupe drops entries whose date was already seen, keeping the first occurrence.
func Dedupe(entries []*Entry) []*Entry {
	return lo.UniqBy(entries, func(e *Entry) string {
		return e.Date
	})
}
