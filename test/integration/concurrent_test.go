package integration

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/test/mock"
)

// TestConcurrent_MultipleListRequests tests that concurrent listing requests
// are handled correctly without interference.
func TestConcurrent_MultipleListRequests(t *testing.T) {
	// Arrange
	source := mock.NewSource("upstream").
		WithDelay(10 * time.Millisecond). // Small delay to increase overlap
		WithSailings(mock.SampleSailings("A", 3))

	ts := NewTestServer(CreateUseCase([]domain.SailingSource{source}))

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act - Fire concurrent requests
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.ListRequest(nil)
		}(i)
	}

	wg.Wait()

	// Assert - All requests should succeed
	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		env, err := results[i].ParseListing()
		require.NoError(t, err)
		assert.Len(t, env.Data.Sailings, 3, "request %d should have 3 sailings", i)
	}

	// Every request fetches on its own
	assert.Equal(t, numRequests, source.CallCount())
}

// TestConcurrent_IndependentState tests that each concurrent request gets the
// page and ordering it asked for.
func TestConcurrent_IndependentState(t *testing.T) {
	source := mock.NewSource("upstream").
		WithDelay(5 * time.Millisecond).
		WithSailings(mock.SampleSailings("A", 30))

	ts := NewTestServer(CreateUseCase([]domain.SailingSource{source}))

	type request struct {
		page  int
		order string
	}
	requests := []request{
		{1, "asc"}, {2, "asc"}, {3, "asc"},
		{1, "desc"}, {2, "desc"}, {3, "desc"},
	}

	var wg sync.WaitGroup
	results := make([]Response, len(requests))
	for i, r := range requests {
		wg.Add(1)
		go func(idx int, r request) {
			defer wg.Done()
			results[idx] = ts.ListRequest(url.Values{
				"sortBy": {"price"},
				"order":  {r.order},
				"page":   {fmt.Sprint(r.page)},
			})
		}(i, r)
	}
	wg.Wait()

	for i, r := range requests {
		require.Equal(t, http.StatusOK, results[i].Code)

		env, err := results[i].ParseListing()
		require.NoError(t, err)
		assert.Equal(t, r.page, env.Data.Page)
		assert.Equal(t, r.order, env.Data.Sort.Direction)
		require.Len(t, env.Data.Sailings, 10)

		// Sailing i costs 400+75i; page p of an ascending sort starts at index 10(p-1).
		first := 10 * (r.page - 1)
		if r.order == "desc" {
			first = 29 - first
		}
		assert.Equal(t, fmt.Sprintf("$%d", 400+75*first), env.Data.Sailings[0].PriceLabel,
			"page %d %s", r.page, r.order)
	}
}
