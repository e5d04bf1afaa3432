// Package http provides swagger type definitions for API documentation.
// These types mirror the response envelope so swag can document each payload.
package http

// SwaggerListingResponse is the envelope returned by GET /api/v1/sailings.
// @Description Successful listing response
type SwaggerListingResponse struct {
	Success bool       `json:"success" example:"true"`
	Data    ListingDTO `json:"data"`
}

// SwaggerSortOptionsResponse is the envelope returned by GET /api/v1/sailings/sort-options.
// @Description Selectable sort keys and directions
type SwaggerSortOptionsResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    SortOptionsDTO `json:"data"`
}

// SwaggerErrorResponse is the envelope returned on failure.
// @Description Error response
type SwaggerErrorResponse struct {
	Success bool               `json:"success" example:"false"`
	Error   SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail describes a failure.
// @Description Error details
type SwaggerErrorDetail struct {
	Code    string            `json:"code" example:"validation_error"`
	Message string            `json:"message" example:"Request validation failed"`
	Details map[string]string `json:"details,omitempty"`
}
