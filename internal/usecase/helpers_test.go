package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
)

// createTestSailing creates a sailing for testing with the given parameters.
func createTestSailing(name string, price float64, departure string, duration int) domain.Sailing {
	return domain.Sailing{
		Price: price,
		Name:  name,
		Ship: domain.Ship{
			Name:    "Test Ship",
			Rating:  4.5,
			Reviews: 120,
			Line:    domain.CruiseLine{Name: "Test Line"},
		},
		Itinerary:     []string{"Miami, Florida", "Nassau, Bahamas"},
		Region:        "Bahamas",
		DepartureDate: departure,
		ReturnDate:    departure,
		Duration:      duration,
	}
}

// numberedSailings creates n distinct sailings departing on consecutive days.
func numberedSailings(n int) []domain.Sailing {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sailings := make([]domain.Sailing, n)
	for i := range sailings {
		departure := base.AddDate(0, 0, i).Format("2006-01-02")
		sailings[i] = createTestSailing(fmt.Sprintf("sailing-%02d", i+1), float64(100+i), departure, 7)
	}
	return sailings
}

// names extracts sailing names in order.
func names(sailings []domain.Sailing) []string {
	out := make([]string, len(sailings))
	for i, s := range sailings {
		out[i] = s.Name
	}
	return out
}

// prices extracts sailing prices in order.
func prices(sailings []domain.Sailing) []float64 {
	out := make([]float64, len(sailings))
	for i, s := range sailings {
		out[i] = s.Price
	}
	return out
}

// setupMockSource creates a mock source with standard behavior.
func setupMockSource(ctrl *gomock.Controller, name string, sailings []domain.Sailing, err error) *domain.MockSailingSource {
	mock := domain.NewMockSailingSource(ctrl)
	mock.EXPECT().Name().Return(name).AnyTimes()
	mock.EXPECT().Fetch(gomock.Any()).Return(sailings, err).AnyTimes()
	return mock
}

// setupMockSourceWithDelay creates a mock source that simulates network delay.
func setupMockSourceWithDelay(ctrl *gomock.Controller, name string, sailings []domain.Sailing, delay time.Duration) *domain.MockSailingSource {
	mock := domain.NewMockSailingSource(ctrl)
	mock.EXPECT().Name().Return(name).AnyTimes()
	mock.EXPECT().Fetch(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]domain.Sailing, error) {
			select {
			case <-time.After(delay):
				return sailings, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	).AnyTimes()
	return mock
}

// setupMockSourceWithPanic creates a mock source that panics.
func setupMockSourceWithPanic(ctrl *gomock.Controller, name string, panicMsg string) *domain.MockSailingSource {
	mock := domain.NewMockSailingSource(ctrl)
	mock.EXPECT().Name().Return(name).AnyTimes()
	mock.EXPECT().Fetch(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]domain.Sailing, error) {
			panic(panicMsg)
		},
	).AnyTimes()
	return mock
}
