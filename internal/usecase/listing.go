package usecase

import (
	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/timeutil"
)

// ListingState is the state of one listing session: the deduped baseline in
// default order, the current ordering, the active sort and the current page.
//
// ListingState is a value. Transitions return a new state and never modify
// the receiver or any slice it shares with other states.
type ListingState struct {
	baseline []domain.Sailing
	current  []domain.Sailing
	sort     domain.SortSpec
	page     int
	pageSize int
	sorter   *Sorter
}

// StateOption configures Initialize.
type StateOption func(*ListingState)

// WithCalendar sets the calendar used to compare departure dates.
func WithCalendar(cal timeutil.Calendar) StateOption {
	return func(s *ListingState) {
		s.sorter = NewSorter(cal)
	}
}

// Initialize dedupes raw sailings and orders them by departure date, soonest
// first. The result is both the current list and the reset baseline.
// A pageSize below 1 falls back to domain.DefaultPageSize.
func Initialize(raw []domain.Sailing, pageSize int, opts ...StateOption) ListingState {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}

	s := ListingState{
		sort:     domain.DefaultSort(),
		page:     1,
		pageSize: pageSize,
		sorter:   defaultSorter,
	}
	for _, opt := range opts {
		opt(&s)
	}

	s.baseline = s.sorter.Sort(Dedupe(raw), s.sort)
	s.current = s.baseline
	return s
}

// ApplySort re-orders the current list (not the baseline) and returns to the
// first page. Invalid specs leave the state unchanged.
func (s ListingState) ApplySort(spec domain.SortSpec) ListingState {
	if !spec.Key.IsValid() || !spec.Direction.IsValid() {
		return s
	}
	s.current = s.sorter.Sort(s.current, spec)
	s.sort = spec
	s.page = 1
	return s
}

// Toggle applies selector semantics: choosing the active key flips its
// direction, choosing another key sorts by it ascending.
func (s ListingState) Toggle(key domain.SortKey) ListingState {
	dir := domain.SortAsc
	if key == s.sort.Key {
		dir = s.sort.Direction.Toggle()
	}
	return s.ApplySort(domain.SortSpec{Key: key, Direction: dir})
}

// Reset restores the baseline ordering, the default sort and the first page.
func (s ListingState) Reset() ListingState {
	s.current = s.baseline
	s.sort = domain.DefaultSort()
	s.page = 1
	return s
}

// ChangePage moves to the given page. Pages below 1 become page 1; pages past
// the last are kept and render empty. The returned flag asks the surface to
// scroll back to the top.
func (s ListingState) ChangePage(page int) (ListingState, bool) {
	s.page = max(1, page)
	return s, true
}

// Visible returns the sailings on the current page.
func (s ListingState) Visible() []domain.Sailing {
	return Paginate(s.current, s.page, s.pageSize)
}

// Current returns the full current ordering.
func (s ListingState) Current() []domain.Sailing {
	return append([]domain.Sailing(nil), s.current...)
}

// Total returns the number of distinct sailings.
func (s ListingState) Total() int {
	return len(s.current)
}

// TotalPages returns the number of pages for the current list.
func (s ListingState) TotalPages() int {
	return TotalPages(len(s.current), s.pageSize)
}

// Window returns the page window for the current page.
func (s ListingState) Window() []domain.PageEntry {
	return PageWindow(s.page, s.TotalPages())
}

// Sort returns the active sort.
func (s ListingState) Sort() domain.SortSpec {
	return s.sort
}

// Page returns the current 1-based page.
func (s ListingState) Page() int {
	return s.page
}

// PageSize returns the number of sailings per page.
func (s ListingState) PageSize() int {
	return s.pageSize
}

// Listing builds the page view of the state.
func (s ListingState) Listing(scrollToTop bool) domain.ListingPage {
	page := domain.NewListingPage(s.Visible(), s.Total(), s.page, s.pageSize, s.sort, s.Window())
	page.ScrollToTop = scrollToTop
	return page
}
