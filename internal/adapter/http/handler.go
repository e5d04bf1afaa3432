// Package http provides the HTTP handler layer for the sailing listing API.
// It handles query parsing, validation, response formatting and error mapping.
package http

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/sailing-search/sailing-listing-service/internal/adapter/calendar"
	"github.com/sailing-search/sailing-listing-service/internal/adapter/http/middleware"
	"github.com/sailing-search/sailing-listing-service/internal/adapter/http/response"
	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/format"
	"github.com/sailing-search/sailing-listing-service/internal/usecase"
)

// CalendarFilename is the attachment name of the calendar export.
const CalendarFilename = "sailings.ics"

// CalendarWriter serializes a page of sailings as an iCalendar feed.
type CalendarWriter interface {
	Write(w io.Writer, sailings []domain.Sailing) error
}

// SailingHandler handles HTTP requests for sailing listing endpoints.
type SailingHandler struct {
	useCase   usecase.SailingListUseCase
	formatter *format.Formatter
	exporter  CalendarWriter
}

// NewSailingHandler creates a new SailingHandler.
// Nil formatter or exporter fall back to the en-US defaults.
func NewSailingHandler(uc usecase.SailingListUseCase, f *format.Formatter, exp CalendarWriter) *SailingHandler {
	if f == nil {
		f = format.NewFormatter(nil)
	}
	if exp == nil {
		exp = calendar.NewExporter(nil, nil)
	}
	return &SailingHandler{
		useCase:   uc,
		formatter: f,
		exporter:  exp,
	}
}

// ListSailings handles GET /api/v1/sailings
//
// @Summary List sailings
// @Description Returns one page of the deduplicated, sorted sailing listing
// @Tags sailings
// @Produce json
// @Param sortBy query string false "Comma-separated key[:direction] list (price, departureDate, duration)"
// @Param order query string false "Default direction for sortBy items (asc, desc)"
// @Param toggle query string false "Comma-separated sort selector picks replayed after sortBy"
// @Param page query int false "1-based page number"
// @Param pageSize query int false "Sailings per page (1-100)"
// @Param reset query bool false "Restore the default ordering"
// @Success 200 {object} SwaggerListingResponse
// @Failure 400 {object} SwaggerErrorResponse "Invalid query"
// @Failure 504 {object} SwaggerErrorResponse "Gateway timeout"
// @Router /api/v1/sailings [get]
func (h *SailingHandler) ListSailings(c echo.Context) error {
	page, ok, err := h.list(c)
	if !ok {
		return err
	}

	c.Set(middleware.ResultCountKey, len(page.Sailings))

	return response.Listing(c, ToListingDTO(h.formatter, page))
}

// ExportCalendar handles GET /api/v1/sailings/calendar.ics
//
// @Summary Export sailings as iCalendar
// @Description Returns the sailings of the requested page as an RFC 5545 calendar
// @Tags sailings
// @Produce text/calendar
// @Param sortBy query string false "Comma-separated key[:direction] list (price, departureDate, duration)"
// @Param order query string false "Default direction for sortBy items (asc, desc)"
// @Param toggle query string false "Comma-separated sort selector picks replayed after sortBy"
// @Param page query int false "1-based page number"
// @Param pageSize query int false "Sailings per page (1-100)"
// @Param reset query bool false "Restore the default ordering"
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} SwaggerErrorResponse "Invalid query"
// @Failure 504 {object} SwaggerErrorResponse "Gateway timeout"
// @Router /api/v1/sailings/calendar.ics [get]
func (h *SailingHandler) ExportCalendar(c echo.Context) error {
	page, ok, err := h.list(c)
	if !ok {
		return err
	}

	var buf bytes.Buffer
	if err := h.exporter.Write(&buf, page.Sailings); err != nil {
		middleware.LoggerFrom(c).Error().
			Err(err).
			Int("sailings", len(page.Sailings)).
			Msg("calendar export failed")
		return response.InternalServerError(c)
	}

	c.Set(middleware.ResultCountKey, len(page.Sailings))

	return response.Attachment(c, calendar.ContentType, CalendarFilename, buf.Bytes())
}

// SortOptions handles GET /api/v1/sailings/sort-options
//
// @Summary List sort options
// @Description Returns the selectable sort keys, directions and the default ordering
// @Tags sailings
// @Produce json
// @Success 200 {object} SwaggerSortOptionsResponse
// @Router /api/v1/sailings/sort-options [get]
func (h *SailingHandler) SortOptions(c echo.Context) error {
	return response.OK(c, ToSortOptionsDTO())
}

// Health handles GET /health
// Simple health check endpoint.
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *SailingHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// list binds, validates and runs the listing for the request.
// When ok is false the error response has already been written and err is
// the result of writing it.
func (h *SailingHandler) list(c echo.Context) (page *domain.ListingPage, ok bool, err error) {
	req, err := BindListSailingsRequest(c)
	if err != nil {
		var bindErr *QueryBindError
		if errors.As(err, &bindErr) {
			return nil, false, response.InvalidQuery(c, bindErr.Fields)
		}
		return nil, false, response.InvalidQuery(c, nil)
	}

	if err := req.Validate(); err != nil {
		return nil, false, h.handleValidationError(c, err)
	}

	page, err = h.useCase.List(c.Request().Context(), ToListOptions(req))
	if err != nil {
		return nil, false, h.handleError(c, err)
	}
	return page, true, nil
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *SailingHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps use case errors to HTTP responses.
func (h *SailingHandler) handleError(c echo.Context, err error) error {
	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	middleware.LoggerFrom(c).Error().Err(err).Msg("listing failed")
	return response.InternalServerError(c)
}
