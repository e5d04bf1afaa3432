package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the upstream calendar-date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Calendar parses calendar dates and names months.
// Formatting code depends on this interface instead of the host locale so
// output is identical on every machine.
type Calendar interface {
	// ParseDate parses a YYYY-MM-DD string as midnight UTC.
	ParseDate(value string) (time.Time, error)

	// MonthAbbrev returns the short month name (e.g., "Dec").
	MonthAbbrev(m time.Month) string
}

// enUSMonths are the en-US short month names.
var enUSMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// USCalendar is the fixed en-US, UTC calendar.
type USCalendar struct{}

// NewUSCalendar creates a new USCalendar instance.
func NewUSCalendar() *USCalendar {
	return &USCalendar{}
}

// ParseDate parses value as a calendar date at midnight UTC.
func (USCalendar) ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

// MonthAbbrev returns the en-US short month name.
func (USCalendar) MonthAbbrev(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return enUSMonths[m-1]
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns midnight UTC of the given time's UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

var _ Calendar = (*USCalendar)(nil)
