// Package calendar exports sailings as an iCalendar feed so a listing page can
// be added to any calendar application.
package calendar

import (
	"fmt"
	"io"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/format"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/timeutil"
)

// ContentType is the media type of the exported feed.
const ContentType = "text/calendar; charset=utf-8"

// uidNamespace scopes event UIDs to this service.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://sailing-listing.local/sailings"))

// Exporter writes sailings as all-day VEVENTs spanning departure to return.
type Exporter struct {
	clock     timeutil.Clock
	cal       timeutil.Calendar
	formatter *format.Formatter
}

// NewExporter creates a new Exporter. Nil collaborators fall back to the real
// clock and the en-US/UTC calendar.
func NewExporter(clock timeutil.Clock, cal timeutil.Calendar) *Exporter {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if cal == nil {
		cal = timeutil.NewUSCalendar()
	}
	return &Exporter{
		clock:     clock,
		cal:       cal,
		formatter: format.NewFormatter(cal),
	}
}

// EventID returns a stable UID for a sailing. Structurally identical sailings
// share a UID, so re-importing a feed updates events instead of duplicating them.
func EventID(s domain.Sailing) string {
	return uuid.NewSHA1(uidNamespace, []byte(s.Key())).String() + "@sailing-listing"
}

// Write serializes sailings to w in listing order.
// Sailings whose dates cannot be parsed are skipped.
func (e *Exporter) Write(w io.Writer, sailings []domain.Sailing) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := e.clock.Now()

	for _, s := range sailings {
		start, err := e.cal.ParseDate(s.DepartureDate)
		if err != nil {
			continue
		}
		end, err := e.cal.ParseDate(s.ReturnDate)
		if err != nil || end.Before(start) {
			end = start
		}

		card := e.formatter.Card(s)

		event := cal.AddEvent(EventID(s))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(timeutil.StartOfDay(start))
		// DTEND is exclusive; the return day is part of the cruise
		event.SetEndAt(timeutil.StartOfDay(end).AddDate(0, 0, 1))
		event.SetSummary(card.Title)
		if len(card.Route) > 0 {
			event.SetLocation(card.Route[0])
		}
		event.SetDescription(describe(card))
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("serialize calendar: %w", err)
	}
	return nil
}

// describe renders the event body.
func describe(c format.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", c.ShipName, c.Line)
	fmt.Fprintf(&b, "%d nights, %s\n", c.Nights, c.Region)
	if len(c.Route) > 0 {
		fmt.Fprintf(&b, "Route: %s\n", strings.Join(c.Route, " → "))
	}
	if c.ShowPrice {
		fmt.Fprintf(&b, "From %s\n", c.PriceLabel)
	}
	if c.ShowRating {
		fmt.Fprintf(&b, "Rated %.1f (%d reviews)\n", c.Rating, c.Reviews)
	}
	b.WriteString(c.DateRange)
	return b.String()
}
