// Package integration provides helpers and integration tests for the sailing
// listing service. Integration tests verify that components work together
// correctly, including HTTP handlers, middleware, use cases and sources.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/sailing-search/sailing-listing-service/internal/adapter/calendar"
	httpAdapter "github.com/sailing-search/sailing-listing-service/internal/adapter/http"
	"github.com/sailing-search/sailing-listing-service/internal/adapter/http/middleware"
	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/logger"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/timeutil"
	"github.com/sailing-search/sailing-listing-service/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.SailingHandler
}

// NewTestServer creates a test server with the full middleware chain and the given use case.
func NewTestServer(uc usecase.SailingListUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.Nop().Logger)

	exp := calendar.NewExporter(timeutil.NewMockClockFromString("2024-01-01T12:00:00Z"), nil)
	handler := httpAdapter.NewSailingHandler(uc, nil, exp)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request and returns the response.
func (ts *TestServer) Get(path string) Response {
	httpReq := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// ListRequest requests the listing with the given query parameters.
func (ts *TestServer) ListRequest(query url.Values) Response {
	path := "/api/v1/sailings"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return ts.Get(path)
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// ListingEnvelope is the decoded success or error envelope of a listing response.
type ListingEnvelope struct {
	Success bool                   `json:"success"`
	Data    httpAdapter.ListingDTO `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

// ParseListing parses the response body as a listing envelope.
func (r *Response) ParseListing() (*ListingEnvelope, error) {
	var env ListingEnvelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Titles returns the card titles of a listing in order.
func (e *ListingEnvelope) Titles() []string {
	titles := make([]string, len(e.Data.Sailings))
	for i, s := range e.Data.Sailings {
		titles[i] = s.Title
	}
	return titles
}

// CreateUseCase creates a use case with the given sources and default configuration.
func CreateUseCase(sources []domain.SailingSource) usecase.SailingListUseCase {
	return usecase.NewSailingListUseCase(sources, nil, nil)
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(sources []domain.SailingSource, config *usecase.Config) usecase.SailingListUseCase {
	return usecase.NewSailingListUseCase(sources, config, nil)
}
