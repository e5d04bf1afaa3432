// Package format provides presentational normalization for sailings:
// date ranges, port city names, title casing and image fallbacks.
// Every function is pure; date handling goes through an injected calendar.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/timeutil"
)

// Fallback image URLs.
const (
	// DefaultShipImageURL is used when a ship has no image
	DefaultShipImageURL = "/default_ship_image.jpg"

	// DefaultLogoSeabournImageURL is the bundled Seabourn Cruise Line logo
	DefaultLogoSeabournImageURL = "/seabourn_logo.jpg"

	// DefaultLogoImageURL is used when a cruise line has no logo
	DefaultLogoImageURL = "/default_logo_image.jpg"
)

// seabournLineName is the only line with a bundled logo.
const seabournLineName = "Seabourn Cruise Line"

var (
	parentheticalPattern = regexp.MustCompile(`\s*\([^)]*\)`)
	fortPattern          = regexp.MustCompile(`\bFort\s+`)
	spacesPattern        = regexp.MustCompile(`\s+`)
)

// Formatter renders sailing fields for display.
type Formatter struct {
	cal timeutil.Calendar
}

// NewFormatter creates a Formatter backed by the given calendar.
// A nil calendar falls back to the fixed en-US/UTC calendar.
func NewFormatter(cal timeutil.Calendar) *Formatter {
	if cal == nil {
		cal = timeutil.NewUSCalendar()
	}
	return &Formatter{cal: cal}
}

// DateRange formats two YYYY-MM-DD dates as a compact range:
//   - different years:  "Dec 25, 2023 - Jan 5, 2024"
//   - different months: "Nov 28 - Dec 5, 2023"
//   - same month:       "Dec 1-15, 2023"
//   - same day:         "Dec 1, 2023"
//
// Unparseable input is returned as "start - end".
func (f *Formatter) DateRange(startDate, endDate string) string {
	start, err := f.cal.ParseDate(startDate)
	if err != nil {
		return rawRange(startDate, endDate)
	}
	end, err := f.cal.ParseDate(endDate)
	if err != nil {
		return rawRange(startDate, endDate)
	}

	startMonth := f.cal.MonthAbbrev(start.Month())
	endMonth := f.cal.MonthAbbrev(end.Month())

	switch {
	case start.Year() != end.Year():
		return fmt.Sprintf("%s %d, %d - %s %d, %d",
			startMonth, start.Day(), start.Year(), endMonth, end.Day(), end.Year())
	case start.Month() != end.Month():
		return fmt.Sprintf("%s %d - %s %d, %d", startMonth, start.Day(), endMonth, end.Day(), start.Year())
	case start.Day() != end.Day():
		return fmt.Sprintf("%s %d-%d, %d", startMonth, start.Day(), end.Day(), start.Year())
	default:
		return fmt.Sprintf("%s %d, %d", startMonth, start.Day(), start.Year())
	}
}

func rawRange(startDate, endDate string) string {
	return strings.TrimSpace(startDate + " - " + endDate)
}

// CityFromLocation extracts a display city name from an itinerary stop.
// Parenthetical notes and everything after the first comma are dropped,
// words are title-cased and "Fort" is abbreviated to "Ft.":
//
//	"FORT LAUDERDALE (Port Everglades), FL" -> "Ft. Lauderdale"
func CityFromLocation(location string) string {
	city := parentheticalPattern.ReplaceAllString(location, "")
	city, _, _ = strings.Cut(city, ",")
	city = TitleCase(strings.TrimSpace(city))
	return fortPattern.ReplaceAllString(city, "Ft. ")
}

// TitleCase capitalizes the first letter of each word and lowercases the rest.
func TitleCase(title string) string {
	title = spacesPattern.ReplaceAllString(strings.TrimSpace(title), " ")
	// A Caser keeps state between calls, so one is built per invocation.
	return cases.Title(language.AmericanEnglish).String(title)
}

// DefaultLogoByLine returns the bundled logo for a cruise line name.
func DefaultLogoByLine(lineName string) string {
	if lineName == seabournLineName {
		return DefaultLogoSeabournImageURL
	}
	return DefaultLogoImageURL
}

// LogoURL returns the line's logo, or the bundled fallback when absent.
func LogoURL(line domain.CruiseLine) string {
	if line.Logo != "" {
		return line.Logo
	}
	return DefaultLogoByLine(line.Name)
}

// ShipImageURL returns the ship's image, or the default ship image when absent.
func ShipImageURL(ship domain.Ship) string {
	if ship.Image != "" {
		return ship.Image
	}
	return DefaultShipImageURL
}

// Price formats an amount as whole or fractional dollars (e.g., "$610", "$99.5").
func Price(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}

// Route converts an itinerary into display city names, preserving stop order.
func Route(itinerary []string) []string {
	route := make([]string, len(itinerary))
	for i, stop := range itinerary {
		route[i] = CityFromLocation(stop)
	}
	return route
}
