// Package domain contains the core business entities and rules for the sailing listing service.
// These entities are source-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"encoding/json"
	"fmt"
)

// Sailing represents one bookable cruise departure returned by an upstream source.
// It is treated as a value: every pipeline stage produces new slices and never
// mutates a Sailing in place.
type Sailing struct {
	// Price is the lowest advertised fare (USD implied)
	Price float64 `json:"price"`

	// Name is the display name of the sailing package
	Name string `json:"name"`

	// Ship contains information about the ship and its cruise line
	Ship Ship `json:"ship"`

	// Itinerary is the ordered list of port/location stops
	Itinerary []string `json:"itinerary"`

	// Region is the broad geography of the cruise (e.g., "Caribbean")
	Region string `json:"region"`

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Duration is the length of the cruise in nights
	Duration int `json:"duration"`
}

// Ship contains information about a cruise ship.
type Ship struct {
	// Name is the ship name
	Name string `json:"name"`

	// Rating is the customer rating out of 5 (0 means no rating)
	Rating float64 `json:"rating"`

	// Reviews is the number of customer reviews
	Reviews int `json:"reviews"`

	// Image is an optional URL to a picture of the ship
	Image string `json:"image,omitempty"`

	// Line contains information about the operating cruise line
	Line CruiseLine `json:"line"`
}

// CruiseLine contains information about a cruise line company.
type CruiseLine struct {
	// Logo is an optional URL to the cruise line's logo
	Logo string `json:"logo,omitempty"`

	// Name is the cruise line name (e.g., "Seabourn Cruise Line")
	Name string `json:"name"`
}

// SailingsPayload is the body returned by the upstream sailings API.
type SailingsPayload struct {
	Results []Sailing `json:"results"`
}

// Key returns the structural identity of the sailing.
// Two sailings share a key iff every field, including nested ship/line fields
// and the itinerary element by element, is equal.
func (s Sailing) Key() string {
	b, err := json.Marshal(s)
	if err != nil {
		// NaN or ±Inf numbers have no JSON form; Go syntax still tells them apart
		return fmt.Sprintf("%#v", s)
	}
	return string(b)
}

// Equal reports whether two sailings are structurally identical.
func (s Sailing) Equal(other Sailing) bool {
	return s.Key() == other.Key()
}

// HasRating returns true if the ship carries a customer rating.
func (s Sailing) HasRating() bool {
	return s.Ship.Rating > 0
}
