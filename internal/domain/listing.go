package domain

import "fmt"

// ListingPage is the result of running the sailing pipeline for one request:
// the visible slice of the current ordering plus everything a surface needs to
// render result counts and pagination controls.
type ListingPage struct {
	// Sailings is the visible slice for the current page
	Sailings []Sailing `json:"sailings"`

	// TotalResults is the number of distinct sailings after deduplication
	TotalResults int `json:"totalResults"`

	// Page is the current 1-based page number
	Page int `json:"page"`

	// PageSize is the number of sailings per page
	PageSize int `json:"pageSize"`

	// TotalPages is ceil(TotalResults / PageSize)
	TotalPages int `json:"totalPages"`

	// Sort is the ordering that produced Sailings
	Sort SortSpec `json:"sort"`

	// Window is the compact page-number sequence for pagination controls
	Window []PageEntry `json:"pagination"`

	// ScrollToTop signals the surface to move the view back to the top
	ScrollToTop bool `json:"scrollToTop"`
}

// NewListingPage creates a ListingPage, normalizing nil slices to empty ones.
func NewListingPage(sailings []Sailing, total, page, pageSize int, sort SortSpec, window []PageEntry) ListingPage {
	if sailings == nil {
		sailings = []Sailing{}
	}
	if window == nil {
		window = []PageEntry{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return ListingPage{
		Sailings:     sailings,
		TotalResults: total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		Sort:         sort,
		Window:       window,
	}
}

// ResultLabel returns the result-count display text (e.g., "12 trips found").
func (p ListingPage) ResultLabel() string {
	return fmt.Sprintf("%d trips found", p.TotalResults)
}

// HasPrev returns true if a previous page exists.
func (p ListingPage) HasPrev() bool {
	return p.Page > 1 && p.TotalPages > 0
}

// HasNext returns true if a next page exists.
func (p ListingPage) HasNext() bool {
	return p.Page < p.TotalPages
}
