package domain

import (
	"fmt"
	"strings"
)

// SortKey defines the field a sailing list is ordered by.
type SortKey string

// Available sort keys.
const (
	// SortByPrice orders by price
	SortByPrice SortKey = "price"

	// SortByDepartureDate orders by departure date (default)
	SortByDepartureDate SortKey = "departureDate"

	// SortByDuration orders by number of nights
	SortByDuration SortKey = "duration"
)

// DefaultSortKey is the ordering applied at load and restored by reset.
const DefaultSortKey = SortByDepartureDate

// IsValid checks if the sort key is a known value.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByPrice, SortByDepartureDate, SortByDuration:
		return true
	default:
		return false
	}
}

// Label returns the human-readable option label shown in sort selectors.
func (k SortKey) Label() string {
	switch k {
	case SortByPrice:
		return "Price"
	case SortByDuration:
		return "Duration"
	default:
		return "Departure Date"
	}
}

// SortDirection defines ascending or descending order.
type SortDirection string

// Available sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// DefaultSortDirection is the direction applied at load and restored by reset.
const DefaultSortDirection = SortAsc

// IsValid checks if the direction is a known value.
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// Toggle returns the opposite direction.
func (d SortDirection) Toggle() SortDirection {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// Label returns the human-readable direction label.
func (d SortDirection) Label() string {
	if d == SortDesc {
		return "Highest first"
	}
	return "Lowest first"
}

// SortSpec is a single sort request: a key plus a direction.
type SortSpec struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort returns the baseline ordering (departure date, soonest first).
func DefaultSort() SortSpec {
	return SortSpec{Key: DefaultSortKey, Direction: DefaultSortDirection}
}

// SortOption describes one selectable sort key for UI collaborators.
type SortOption struct {
	ID    SortKey `json:"id"`
	Label string  `json:"label"`
}

// SortOptions lists the selectable sort keys in display order.
func SortOptions() []SortOption {
	keys := []SortKey{SortByPrice, SortByDepartureDate, SortByDuration}
	opts := make([]SortOption, len(keys))
	for i, k := range keys {
		opts[i] = SortOption{ID: k, Label: k.Label()}
	}
	return opts
}

// LookupSortKey converts a string to a SortKey, reporting whether it is known.
// Matching is case-insensitive and accepts "departure" as an alias.
func LookupSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price":
		return SortByPrice, true
	case "duration":
		return SortByDuration, true
	case "departuredate", "departure":
		return SortByDepartureDate, true
	default:
		return "", false
	}
}

// MaxSortItems caps the number of items in a sort or toggle list.
const MaxSortItems = 10

// checkListLength rejects lists with more than MaxSortItems items.
func checkListLength(list string) error {
	if n := strings.Count(list, ",") + 1; n > MaxSortItems {
		return fmt.Errorf("too many sort items (%d); at most %d are allowed", n, MaxSortItems)
	}
	return nil
}

// ParseSortSpecs parses a comma-separated list of key[:direction] items
// (e.g., "duration,price:desc"). Items without a direction use def.
// An empty list yields no specs; more than MaxSortItems items is an error.
func ParseSortSpecs(list string, def SortDirection) ([]SortSpec, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	if err := checkListLength(list); err != nil {
		return nil, err
	}

	var specs []SortSpec
	for _, item := range strings.Split(list, ",") {
		rawKey, rawDir, hasDir := strings.Cut(strings.TrimSpace(item), ":")

		key, ok := LookupSortKey(rawKey)
		if !ok {
			return nil, fmt.Errorf("unknown sort key %q; must be one of: price, departureDate, duration", rawKey)
		}

		dir := def
		if hasDir {
			dir = SortDirection(strings.ToLower(strings.TrimSpace(rawDir)))
			if !dir.IsValid() {
				return nil, fmt.Errorf("unknown sort direction %q; must be one of: asc, desc", rawDir)
			}
		}

		specs = append(specs, SortSpec{Key: key, Direction: dir})
	}
	return specs, nil
}

// ParseSortKeys parses a comma-separated list of sort keys.
// An empty list yields no keys; more than MaxSortItems items is an error.
func ParseSortKeys(list string) ([]SortKey, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	if err := checkListLength(list); err != nil {
		return nil, err
	}

	var keys []SortKey
	for _, item := range strings.Split(list, ",") {
		key, ok := LookupSortKey(item)
		if !ok {
			return nil, fmt.Errorf("unknown sort key %q; must be one of: price, departureDate, duration", strings.TrimSpace(item))
		}
		keys = append(keys, key)
	}
	return keys, nil
}
