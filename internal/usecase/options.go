// Package usecase contains the sailing listing pipeline: deduplication,
// ordering, pagination and the listing state that composes them.
// SailingListUseCase gathers sailings from the configured sources and runs
// them through that pipeline once per request.
package usecase

import "github.com/sailing-search/sailing-listing-service/internal/domain"

// ListOptions contains the user actions to replay on a freshly loaded listing.
type ListOptions struct {
	// Sorts are applied in order on top of the default ordering
	Sorts []domain.SortSpec

	// Toggles are sort selector picks replayed after Sorts: picking the active
	// key flips its direction, picking another key sorts by it ascending
	Toggles []domain.SortKey

	// Reset restores the default ordering; Sorts and Toggles are ignored when set
	Reset bool

	// Page is the requested 1-based page (0 means first page)
	Page int

	// PageSize overrides the configured page size when positive
	PageSize int
}

// DefaultListOptions returns ListOptions for the first page in default order.
func DefaultListOptions() ListOptions {
	return ListOptions{
		Sorts: nil,
		Reset: false,
		Page:  1,
	}
}

// HasPage returns true if a specific page was requested.
func (o ListOptions) HasPage() bool {
	return o.Page > 1
}
