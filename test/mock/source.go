// Package mock provides test doubles for the sailing listing service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/timeutil"
)

// Source is a configurable mock implementation of domain.SailingSource.
// It supports configurable delays, errors, and responses for testing
// timeouts and partial failures.
type Source struct {
	name      string
	sailings  []domain.Sailing
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{name: name}
}

// WithSailings configures the source to return the given sailings.
func (s *Source) WithSailings(sailings []domain.Sailing) *Source {
	s.sailings = sailings
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name returns the source's unique identifier.
func (s *Source) Name() string {
	return s.name
}

// Fetch implements domain.SailingSource.Fetch.
// It respects context cancellation, applies the configured delay,
// and returns the configured sailings or error.
func (s *Source) Fetch(ctx context.Context) ([]domain.Sailing, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, domain.NewSourceError(s.name, s.err)
	}

	return s.sailings, nil
}

// CallCount returns the number of times Fetch was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset resets the call count to zero.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

// Ensure Source implements domain.SailingSource at compile time.
var _ domain.SailingSource = (*Source)(nil)

// SampleSailings returns count distinct sailings departing on consecutive
// weeks from 2024-01-06. Prices rise and durations cycle through 3..9 nights,
// so every sort key produces a different order.
func SampleSailings(prefix string, count int) []domain.Sailing {
	sailings := make([]domain.Sailing, count)
	base := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		nights := 3 + (i*5)%7
		departure := base.AddDate(0, 0, 7*i)

		sailings[i] = domain.Sailing{
			Price:         float64(400 + 75*i),
			Name:          fmt.Sprintf("%s %d NIGHT CARIBBEAN %02d", prefix, nights, i+1),
			Region:        "Caribbean",
			Duration:      nights,
			DepartureDate: timeutil.FormatDate(departure),
			ReturnDate:    timeutil.FormatDate(departure.AddDate(0, 0, nights)),
			Itinerary:     []string{"FORT LAUDERDALE (Port Everglades), FL", "Cozumel, Mexico", "FORT LAUDERDALE (Port Everglades), FL"},
			Ship: domain.Ship{
				Name:    "Test Ship " + prefix,
				Rating:  4.1,
				Reviews: 100 + i,
				Line:    domain.CruiseLine{Name: "Royal Caribbean"},
			},
		}
	}

	return sailings
}
