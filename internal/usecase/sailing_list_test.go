package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/logger"
)

func TestNewSailingListUseCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := setupMockSource(ctrl, "test", nil, nil)

	tests := []struct {
		name    string
		sources []domain.SailingSource
		config  *Config
	}{
		{"with default config", []domain.SailingSource{source}, nil},
		{"with custom config", []domain.SailingSource{source}, &Config{FetchTimeout: time.Second, PageSize: 5}},
		{"with empty sources", []domain.SailingSource{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSailingListUseCase(tt.sources, tt.config, nil)
			require.NotNil(t, uc)
		})
	}
}

func TestList_DefaultOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSource(ctrl, "api", listingFixture(), nil),
	}, nil, logger.Nop())

	listing, err := uc.List(context.Background(), DefaultListOptions())

	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, []string{"A", "B", "C"}, names(listing.Sailings))
	assert.Equal(t, 3, listing.TotalResults)
	assert.Equal(t, domain.DefaultSort(), listing.Sort)
	assert.False(t, listing.ScrollToTop)
}

func TestList_ReplaysSorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSource(ctrl, "api", listingFixture(), nil),
	}, nil, nil)

	listing, err := uc.List(context.Background(), ListOptions{
		Sorts: []domain.SortSpec{
			{Key: domain.SortByDuration, Direction: domain.SortAsc},
			{Key: domain.SortByPrice, Direction: domain.SortDesc},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []float64{300, 200, 100}, prices(listing.Sailings))
	assert.Equal(t, domain.SortSpec{Key: domain.SortByPrice, Direction: domain.SortDesc}, listing.Sort)
}

func TestList_ReplaysToggles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSource(ctrl, "api", listingFixture(), nil),
	}, nil, nil)

	listing, err := uc.List(context.Background(), ListOptions{
		Toggles: []domain.SortKey{domain.SortByPrice, domain.SortByPrice},
	})

	require.NoError(t, err)
	assert.Equal(t, []float64{300, 200, 100}, prices(listing.Sailings))
	assert.Equal(t, domain.SortSpec{Key: domain.SortByPrice, Direction: domain.SortDesc}, listing.Sort)
}

func TestList_ResetIgnoresSorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSource(ctrl, "api", listingFixture(), nil),
	}, nil, nil)

	listing, err := uc.List(context.Background(), ListOptions{
		Sorts: []domain.SortSpec{{Key: domain.SortByPrice, Direction: domain.SortDesc}},
		Reset: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names(listing.Sailings))
	assert.Equal(t, domain.DefaultSort(), listing.Sort)
}

func TestList_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSource(ctrl, "api", numberedSailings(23), nil),
	}, &Config{PageSize: 10}, nil)

	listing, err := uc.List(context.Background(), ListOptions{Page: 3})

	require.NoError(t, err)
	assert.Equal(t, []string{"sailing-21", "sailing-22", "sailing-23"}, names(listing.Sailings))
	assert.Equal(t, 3, listing.Page)
	assert.Equal(t, 3, listing.TotalPages)
	assert.True(t, listing.ScrollToTop)
}

func TestList_PageSizeOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSource(ctrl, "api", numberedSailings(23), nil),
	}, nil, nil)

	listing, err := uc.List(context.Background(), ListOptions{PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, listing.Sailings, 5)
	assert.Equal(t, 5, listing.TotalPages)

	listing, err = uc.List(context.Background(), ListOptions{PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxPageSize, listing.PageSize)
}

func TestList_MergesSourcesInOrderAndDedupes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := createTestSailing("A", 100, "2024-01-01", 7)
	b := createTestSailing("B", 100, "2024-01-01", 7)
	c := createTestSailing("C", 100, "2024-01-01", 7)

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSourceWithDelay(ctrl, "slow", []domain.Sailing{a, b}, 30*time.Millisecond),
		setupMockSource(ctrl, "fast", []domain.Sailing{b, c}, nil),
	}, nil, nil)

	listing, err := uc.List(context.Background(), DefaultListOptions())

	require.NoError(t, err)
	// equal departure dates keep source order
	assert.Equal(t, []string{"A", "B", "C"}, names(listing.Sailings))
}

func TestList_SourceFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	log := logger.NewWithOutput(logger.Config{Level: "warn", Format: "json", ServiceName: "test"}, &buf)

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSource(ctrl, "api", nil, domain.NewSourceError("api", domain.ErrSourceUnavailable)),
	}, nil, log)

	listing, err := uc.List(context.Background(), DefaultListOptions())

	require.NoError(t, err)
	assert.Equal(t, 0, listing.TotalResults)
	assert.Equal(t, "0 trips found", listing.ResultLabel())
	assert.Empty(t, listing.Sailings)
	assert.Empty(t, listing.Window)
	assert.Contains(t, buf.String(), `"source":"api"`)
	assert.Contains(t, buf.String(), "sailing source unavailable")
}

func TestList_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSource(ctrl, "broken", nil, errors.New("boom")),
		setupMockSource(ctrl, "fixture", listingFixture(), nil),
	}, nil, nil)

	listing, err := uc.List(context.Background(), DefaultListOptions())

	require.NoError(t, err)
	assert.Equal(t, 3, listing.TotalResults)
}

func TestList_SourcePanicIsRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSourceWithPanic(ctrl, "panicky", "nil map"),
		setupMockSource(ctrl, "fixture", listingFixture(), nil),
	}, nil, nil)

	listing, err := uc.List(context.Background(), DefaultListOptions())

	require.NoError(t, err)
	assert.Equal(t, 3, listing.TotalResults)
}

func TestList_FetchTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSourceWithDelay(ctrl, "slow", listingFixture(), time.Second),
	}, &Config{FetchTimeout: 20 * time.Millisecond}, nil)

	start := time.Now()
	listing, err := uc.List(context.Background(), DefaultListOptions())

	require.NoError(t, err)
	assert.Equal(t, 0, listing.TotalResults)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestList_CallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSailingListUseCase([]domain.SailingSource{
		setupMockSourceWithDelay(ctrl, "slow", listingFixture(), time.Second),
	}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	listing, err := uc.List(ctx, DefaultListOptions())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, listing)
}

func TestList_NoSources(t *testing.T) {
	uc := NewSailingListUseCase(nil, nil, nil)

	listing, err := uc.List(context.Background(), DefaultListOptions())

	require.NoError(t, err)
	assert.Equal(t, 0, listing.TotalResults)
}
