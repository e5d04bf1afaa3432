package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailing-search/sailing-listing-service/internal/config"
	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/timeutil"
)

// stubSource returns a fixed list of sailings.
type stubSource struct {
	sailings []domain.Sailing
	err      error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(ctx context.Context) ([]domain.Sailing, error) {
	return s.sailings, s.err
}

func sailing(name string, price float64, departure string, nights int) domain.Sailing {
	dep, _ := time.Parse("2006-01-02", departure)
	return domain.Sailing{
		Name:          name,
		Price:         price,
		Region:        "Caribbean",
		Duration:      nights,
		DepartureDate: departure,
		ReturnDate:    dep.AddDate(0, 0, nights).Format("2006-01-02"),
		Itinerary:     []string{"Miami, Florida", "Cozumel, Mexico"},
		Ship: domain.Ship{
			Name:    "Test Ship",
			Rating:  4.5,
			Reviews: 120,
			Line:    domain.CruiseLine{Name: "Royal Caribbean"},
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Timeouts: config.TimeoutConfig{Fetch: time.Second},
		Sources:  config.SourceConfig{FixturePath: "unused.json"},
		Listing:  config.ListingConfig{PageSize: 2},
		Logging:  config.LoggingConfig{Level: "error", Format: "json"},
		App:      config.AppConfig{Env: "development", Name: "sailing-listing"},
	}
}

type runResult struct {
	out    string
	errOut string
	err    error
}

func run(t *testing.T, src domain.SailingSource, args ...string) runResult {
	t.Helper()

	var out, errOut bytes.Buffer
	progressCalls := 0
	app := NewApp(
		WithOutput(&out, &errOut),
		WithConfigLoader(func() (*config.Config, error) { return testConfig(), nil }),
		WithSources(func(config.SourceConfig) []domain.SailingSource { return []domain.SailingSource{src} }),
		WithProgress(func(ctx context.Context, title string, action func()) {
			progressCalls++
			action()
		}),
		WithClock(timeutil.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))),
	)

	root := app.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return runResult{out: out.String(), errOut: errOut.String(), err: err}
}

func fiveSailings() *stubSource {
	return &stubSource{sailings: []domain.Sailing{
		sailing("cruise c", 300, "2024-03-01", 7),
		sailing("cruise a", 500, "2024-01-01", 3),
		sailing("cruise e", 100, "2024-05-01", 10),
		sailing("cruise b", 200, "2024-02-01", 5),
		sailing("cruise d", 400, "2024-04-01", 4),
		sailing("cruise a", 500, "2024-01-01", 3),
	}}
}

func TestListCommand_DefaultOrder(t *testing.T) {
	res := run(t, fiveSailings(), "list")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "5 trips found")
	assert.Contains(t, res.out, "Sorted by Departure Date (Lowest first)")
	assert.Contains(t, res.out, "Cruise A")
	assert.Contains(t, res.out, "Cruise B")
	assert.NotContains(t, res.out, "Cruise C")
	assert.Contains(t, res.out, "[1] 2 3 ›")
	assert.Less(t, strings.Index(res.out, "Cruise A"), strings.Index(res.out, "Cruise B"))
}

func TestListCommand_SortAndPage(t *testing.T) {
	res := run(t, fiveSailings(), "list", "--sort", "price:desc", "--page", "2")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "Sorted by Price (Highest first)")
	assert.Contains(t, res.out, "Cruise C")
	assert.Contains(t, res.out, "Cruise B")
	assert.NotContains(t, res.out, "Cruise E")
	assert.Contains(t, res.out, "‹ 1 [2] 3 ›")
}

func TestListCommand_Toggle(t *testing.T) {
	res := run(t, fiveSailings(), "list", "--toggle", "price,price")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "Sorted by Price (Highest first)")
	assert.Contains(t, res.out, "Cruise A")
	assert.Contains(t, res.out, "Cruise D")
	assert.NotContains(t, res.out, "Cruise C")
}

func TestListCommand_JSON(t *testing.T) {
	res := run(t, fiveSailings(), "list", "--sort", "duration", "--page-size", "3", "--output", "json")
	require.NoError(t, res.err)

	var got listingJSON
	require.NoError(t, json.Unmarshal([]byte(res.out), &got))
	assert.Equal(t, 5, got.TotalResults)
	assert.Equal(t, 3, got.PageSize)
	assert.Equal(t, 2, got.TotalPages)
	assert.Equal(t, domain.SortSpec{Key: domain.SortByDuration, Direction: domain.SortAsc}, got.Sort)
	require.Len(t, got.Sailings, 3)
	assert.Equal(t, []string{"Cruise A", "Cruise D", "Cruise B"},
		[]string{got.Sailings[0].Title, got.Sailings[1].Title, got.Sailings[2].Title})
	assert.Equal(t, []string{"Miami", "Cozumel"}, got.Sailings[0].Route)
}

func TestListCommand_ResetIgnoresSort(t *testing.T) {
	res := run(t, fiveSailings(), "list", "--sort", "price:desc", "--reset", "--output", "json")
	require.NoError(t, res.err)

	var got listingJSON
	require.NoError(t, json.Unmarshal([]byte(res.out), &got))
	assert.Equal(t, domain.DefaultSort(), got.Sort)
	assert.Equal(t, "Cruise A", got.Sailings[0].Title)
}

func TestListCommand_PageOutOfRange(t *testing.T) {
	res := run(t, fiveSailings(), "list", "--page", "9")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "5 trips found")
	assert.Contains(t, res.out, "No sailings on this page.")
}

func TestListCommand_SourceFailureShowsEmptyListing(t *testing.T) {
	res := run(t, &stubSource{err: errors.New("upstream down")}, "list")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "0 trips found")
	assert.Contains(t, res.out, "No sailings on this page.")
}

func TestListCommand_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown sort key", []string{"list", "--sort", "rating"}, "unknown sort key"},
		{"unknown direction", []string{"list", "--sort", "price:up"}, "unknown sort direction"},
		{"unknown order", []string{"list", "--order", "up"}, "--order must be one of"},
		{"unknown toggle key", []string{"list", "--toggle", "rating"}, "--toggle"},
		{"too many sort items", []string{"list", "--sort", strings.Repeat("price,", 11) + "price"}, "too many sort items"},
		{"page zero", []string{"list", "--page", "0"}, "--page must be at least 1"},
		{"negative page", []string{"list", "--page=-3"}, "--page must be at least 1"},
		{"page size zero", []string{"list", "--page-size", "0"}, "--page-size must be at least 1"},
		{"unknown output", []string{"list", "--output", "xml"}, "--output must be one of"},
		{"positional args", []string{"list", "extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, fiveSailings(), tt.args...)
			require.Error(t, res.err)
			assert.Contains(t, res.err.Error(), tt.wantErr)
		})
	}
}

func TestListCommand_ConfigError(t *testing.T) {
	var out, errOut bytes.Buffer
	app := NewApp(
		WithOutput(&out, &errOut),
		WithConfigLoader(func() (*config.Config, error) { return nil, errors.New("bad config") }),
	)
	root := app.RootCommand()
	root.SetArgs([]string{"list", "--quiet"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad config")
}

func TestExportCommand_Stdout(t *testing.T) {
	res := run(t, fiveSailings(), "export", "--sort", "price")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "BEGIN:VCALENDAR")
	assert.Equal(t, 2, strings.Count(res.out, "BEGIN:VEVENT"))
	assert.Contains(t, res.out, "SUMMARY:Cruise E")
	assert.Contains(t, res.out, "SUMMARY:Cruise B")
	assert.Contains(t, res.out, "DTSTAMP:20240101T120000Z")
}

func TestExportCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sailings.ics")

	res := run(t, fiveSailings(), "export", "--file", path, "--page-size", "5")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Exported 5 sailings to "+path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(body), "BEGIN:VEVENT"))
}

func TestSortOptionsCommand(t *testing.T) {
	res := run(t, fiveSailings(), "sort-options")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "price")
	assert.Contains(t, res.out, "departureDate")
	assert.Contains(t, res.out, "duration")
	assert.Contains(t, res.out, "Default: departureDate:asc")
}

func TestListFlags_Options(t *testing.T) {
	f := &listFlags{order: "desc", page: 3, pageSet: true}

	opts, err := f.options(10)
	require.NoError(t, err)

	assert.Equal(t, []domain.SortSpec{{Key: domain.SortByDepartureDate, Direction: domain.SortDesc}}, opts.Sorts)
	assert.Equal(t, 3, opts.Page)
	assert.Equal(t, 10, opts.PageSize)
}

func TestListFlags_Options_RejectsPageBelowOne(t *testing.T) {
	f := &listFlags{page: 0, pageSet: true}

	_, err := f.options(10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestListFlags_Options_CapsPageSize(t *testing.T) {
	f := &listFlags{pageSize: 500, pageSizeSet: true}

	opts, err := f.options(10)
	require.NoError(t, err)

	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, domain.MaxPageSize, opts.PageSize)
}
