package usecase

import "github.com/sailing-search/sailing-listing-service/internal/domain"

// Paginate returns the sailings on the given 1-based page.
// Pages before the first are treated as the first page; pages past the last
// yield an empty slice. The returned slice never aliases the input.
func Paginate(sailings []domain.Sailing, page, pageSize int) []domain.Sailing {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	// compare pages before computing the offset, which overflows for huge pages
	if page > TotalPages(len(sailings), pageSize) {
		return []domain.Sailing{}
	}

	start := domain.PaginationParams{Page: page, PageSize: pageSize}.Offset()
	end := min(start+pageSize, len(sailings))

	result := make([]domain.Sailing, end-start)
	copy(result, sailings[start:end])
	return result
}

// TotalPages returns ceil(total / pageSize), or 0 when there is nothing to show.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// PageWindow computes the compact page-number sequence for pagination controls.
//
// At most MaxVisiblePages consecutive numbers are shown around currentPage.
// The first and last pages are always reachable: a gap of one page is filled
// with that page number, a larger gap with an ellipsis. For example page 5 of
// 10 yields [1 … 3 4 5 6 7 … 10]. Zero pages yield an empty window.
func PageWindow(currentPage, totalPages int) []domain.PageEntry {
	if totalPages < 1 {
		return []domain.PageEntry{}
	}
	currentPage = max(1, min(currentPage, totalPages))

	half := domain.MaxVisiblePages / 2
	start := max(1, currentPage-half)
	end := min(totalPages, start+domain.MaxVisiblePages-1)
	if end-start+1 < domain.MaxVisiblePages {
		start = max(1, end-domain.MaxVisiblePages+1)
	}

	window := make([]domain.PageEntry, 0, domain.MaxVisiblePages+4)

	if start > 1 {
		window = append(window, domain.PageNumber(1))
		if start > 2 {
			window = append(window, domain.Ellipsis())
		}
	}

	for p := start; p <= end; p++ {
		window = append(window, domain.PageNumber(p))
	}

	if end < totalPages-1 {
		window = append(window, domain.Ellipsis(), domain.PageNumber(totalPages))
	} else if end == totalPages-1 {
		window = append(window, domain.PageNumber(totalPages))
	}

	return window
}
