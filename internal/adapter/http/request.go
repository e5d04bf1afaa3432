package http

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
)

// ListSailingsRequest holds the query parameters of GET /api/v1/sailings.
type ListSailingsRequest struct {
	// SortBy is a comma-separated list of key[:direction] items applied in order
	// (e.g., "duration,price:desc"). Keys: price, departureDate, duration.
	// At most domain.MaxSortItems items.
	SortBy string `query:"sortBy"`

	// Order is the direction for SortBy items without an explicit one (asc, desc)
	Order string `query:"order"`

	// Toggle is a comma-separated list of sort selector picks replayed after
	// SortBy: the active key flips direction, another key sorts ascending
	Toggle string `query:"toggle"`

	// Page is the 1-based page number
	Page int `query:"page"`

	// PageSize is the number of sailings per page (1-100)
	PageSize int `query:"pageSize"`

	// Reset restores the default ordering and ignores SortBy
	Reset bool `query:"reset"`

	hasPage     bool
	hasPageSize bool
	sorts       []domain.SortSpec
	toggles     []domain.SortKey
}

// QueryBindError reports query parameters whose values could not be converted.
type QueryBindError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *QueryBindError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid query parameters: " + strings.Join(fields, ", ")
}

// BindListSailingsRequest reads the listing query parameters from c.
// Conversion failures are returned as *QueryBindError.
func BindListSailingsRequest(c echo.Context) (*ListSailingsRequest, error) {
	req := &ListSailingsRequest{}

	bindErrs := echo.QueryParamsBinder(c).
		String("sortBy", &req.SortBy).
		String("order", &req.Order).
		String("toggle", &req.Toggle).
		Int("page", &req.Page).
		Int("pageSize", &req.PageSize).
		Bool("reset", &req.Reset).
		BindErrors()

	if len(bindErrs) > 0 {
		fields := make(map[string]string, len(bindErrs))
		for _, err := range bindErrs {
			var be *echo.BindingError
			if errors.As(err, &be) {
				fields[be.Field] = fmt.Sprintf("invalid value %q", strings.Join(be.Values, ","))
			}
		}
		return nil, &QueryBindError{Fields: fields}
	}

	query := c.QueryParams()
	req.hasPage = query.Has("page")
	req.hasPageSize = query.Has("pageSize")

	return req, nil
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Unwrap lets callers match validation failures with domain.ErrInvalidRequest.
func (v *ValidationErrors) Unwrap() error {
	return domain.ErrInvalidRequest
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request and resolves SortBy/Order into sort specs.
func (r *ListSailingsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validatePage(errs)
	r.validatePageSize(errs)
	order := r.validateOrder(errs)
	r.validateSortBy(errs, order)
	r.validateToggle(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Sorts returns the sort specs resolved by Validate.
func (r *ListSailingsRequest) Sorts() []domain.SortSpec {
	return r.sorts
}

// Toggles returns the sort selector picks resolved by Validate.
func (r *ListSailingsRequest) Toggles() []domain.SortKey {
	return r.toggles
}

func (r *ListSailingsRequest) validatePage(errs *ValidationErrors) {
	if r.hasPage && r.Page < 1 {
		errs.Add("page", "page must be at least 1")
	}
}

func (r *ListSailingsRequest) validatePageSize(errs *ValidationErrors) {
	if r.hasPageSize && (r.PageSize < 1 || r.PageSize > domain.MaxPageSize) {
		errs.Add("pageSize", fmt.Sprintf("pageSize must be between 1 and %d", domain.MaxPageSize))
	}
}

func (r *ListSailingsRequest) validateOrder(errs *ValidationErrors) domain.SortDirection {
	if r.Order == "" {
		return domain.DefaultSortDirection
	}
	dir, ok := parseDirection(r.Order)
	if !ok {
		errs.Add("order", "order must be one of: asc, desc")
		return domain.DefaultSortDirection
	}
	return dir
}

func (r *ListSailingsRequest) validateSortBy(errs *ValidationErrors, order domain.SortDirection) {
	r.sorts = nil

	if strings.TrimSpace(r.SortBy) == "" {
		if r.Order != "" {
			r.sorts = []domain.SortSpec{{Key: domain.DefaultSortKey, Direction: order}}
		}
		return
	}

	sorts, err := domain.ParseSortSpecs(r.SortBy, order)
	if err != nil {
		errs.Add("sortBy", err.Error())
		return
	}
	r.sorts = sorts
}

func (r *ListSailingsRequest) validateToggle(errs *ValidationErrors) {
	keys, err := domain.ParseSortKeys(r.Toggle)
	if err != nil {
		r.toggles = nil
		errs.Add("toggle", err.Error())
		return
	}
	r.toggles = keys
}

func parseDirection(s string) (domain.SortDirection, bool) {
	dir := domain.SortDirection(strings.ToLower(strings.TrimSpace(s)))
	return dir, dir.IsValid()
}
