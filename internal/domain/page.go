package domain

// Pagination defaults.
const (
	// DefaultPageSize is the number of sailings shown per page
	DefaultPageSize = 10

	// MaxPageSize caps caller-supplied page sizes
	MaxPageSize = 100

	// MaxVisiblePages is the number of consecutive page numbers in a page window
	MaxVisiblePages = 5
)

// PageEntry is one element of a page window: either a clickable page number
// or a non-clickable ellipsis marker.
type PageEntry struct {
	// Page is the 1-based page number (0 for ellipsis entries)
	Page int `json:"page,omitempty"`

	// Ellipsis marks a gap in the page sequence
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageNumber builds a clickable page entry.
func PageNumber(n int) PageEntry {
	return PageEntry{Page: n}
}

// Ellipsis builds a gap marker.
func Ellipsis() PageEntry {
	return PageEntry{Ellipsis: true}
}

// IsClickable returns true for page-number entries.
func (p PageEntry) IsClickable() bool {
	return !p.Ellipsis && p.Page > 0
}

// PaginationParams carries page/pageSize values from a surface to the use case.
// Page is 1-indexed.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// PageSize is the maximum number of sailings to return.
	PageSize int
}

// NewPaginationParams builds PaginationParams from optional caller values.
// Nil pointers fall back to page=1 and the given default page size.
// The page size is capped at MaxPageSize.
func NewPaginationParams(page, pageSize *int, defaultSize int) PaginationParams {
	if defaultSize < 1 {
		defaultSize = DefaultPageSize
	}
	p := PaginationParams{Page: 1, PageSize: defaultSize}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if pageSize != nil && *pageSize >= 1 {
		p.PageSize = *pageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the zero-based index of the first sailing on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
