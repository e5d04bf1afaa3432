package usecase

import (
	"cmp"
	"slices"
	"time"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/timeutil"
)

// Sorter orders sailings by a single key. Departure dates are parsed through
// the injected calendar; unparseable dates compare as the zero time.
type Sorter struct {
	cal timeutil.Calendar
}

// NewSorter creates a Sorter. A nil calendar falls back to the en-US/UTC calendar.
func NewSorter(cal timeutil.Calendar) *Sorter {
	if cal == nil {
		cal = timeutil.NewUSCalendar()
	}
	return &Sorter{cal: cal}
}

// defaultSorter backs SortSailings.
var defaultSorter = NewSorter(nil)

// SortSailings orders sailings with the en-US/UTC calendar.
// See Sorter.Sort.
func SortSailings(sailings []domain.Sailing, spec domain.SortSpec) []domain.Sailing {
	return defaultSorter.Sort(sailings, spec)
}

// sortEntry pairs a sailing with its precomputed departure time.
type sortEntry struct {
	sailing   domain.Sailing
	departure time.Time
}

// Sort returns a new slice ordered by spec. The sort is stable: sailings that
// compare equal keep their input order in both directions, because descending
// order negates the comparison instead of reversing the result.
// Unknown keys return an unchanged copy.
func (s *Sorter) Sort(sailings []domain.Sailing, spec domain.SortSpec) []domain.Sailing {
	result := make([]domain.Sailing, len(sailings))
	copy(result, sailings)

	if len(result) <= 1 || !spec.Key.IsValid() {
		return result
	}

	sign := 1
	if spec.Direction == domain.SortDesc {
		sign = -1
	}

	if spec.Key != domain.SortByDepartureDate {
		slices.SortStableFunc(result, func(a, b domain.Sailing) int {
			return sign * compareByKey(a, b, spec.Key)
		})
		return result
	}

	entries := make([]sortEntry, len(result))
	for i, sailing := range result {
		entries[i] = sortEntry{sailing: sailing, departure: s.departure(sailing)}
	}
	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		return sign * a.departure.Compare(b.departure)
	})
	for i, e := range entries {
		result[i] = e.sailing
	}

	return result
}

// departure parses the departure date, normalized to midnight UTC.
func (s *Sorter) departure(sailing domain.Sailing) time.Time {
	t, err := s.cal.ParseDate(sailing.DepartureDate)
	if err != nil {
		return time.Time{}
	}
	return timeutil.StartOfDay(t)
}

// compareByKey compares the numeric sort keys.
func compareByKey(a, b domain.Sailing, key domain.SortKey) int {
	switch key {
	case domain.SortByPrice:
		return cmp.Compare(a.Price, b.Price)
	case domain.SortByDuration:
		return cmp.Compare(a.Duration, b.Duration)
	default:
		return 0
	}
}
