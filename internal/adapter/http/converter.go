package http

import (
	"github.com/sailing-search/sailing-listing-service/internal/adapter/calendar"
	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/format"
	"github.com/sailing-search/sailing-listing-service/internal/usecase"
)

// ToListOptions converts a validated request to usecase.ListOptions.
func ToListOptions(req *ListSailingsRequest) usecase.ListOptions {
	opts := usecase.DefaultListOptions()
	opts.Sorts = req.Sorts()
	opts.Toggles = req.Toggles()
	opts.Reset = req.Reset
	if req.hasPage {
		opts.Page = req.Page
	}
	if req.hasPageSize {
		opts.PageSize = req.PageSize
	}
	return opts
}

// ToSortDTO converts a domain sort spec.
func ToSortDTO(spec domain.SortSpec) SortDTO {
	return SortDTO{
		Key:            string(spec.Key),
		Direction:      string(spec.Direction),
		Label:          spec.Key.Label(),
		DirectionLabel: spec.Direction.Label(),
	}
}

// ToPageEntryDTOs converts a page window, marking the current page.
func ToPageEntryDTOs(window []domain.PageEntry, current int) []PageEntryDTO {
	entries := make([]PageEntryDTO, len(window))
	for i, e := range window {
		entries[i] = PageEntryDTO{
			Page:     e.Page,
			Ellipsis: e.Ellipsis,
			Current:  e.IsClickable() && e.Page == current,
		}
	}
	return entries
}

// ToSailingCardDTO converts a sailing to its card form.
// Rating and reviews are omitted when the ship has no rating.
func ToSailingCardDTO(f *format.Formatter, s domain.Sailing) SailingCardDTO {
	card := f.Card(s)

	dto := SailingCardDTO{
		Title:     card.Title,
		Region:    card.Region,
		Nights:    card.Nights,
		Route:     card.Route,
		Price:     card.Price,
		ImageURL:  card.ImageURL,
		DateRange: card.DateRange,
		LogoURL:   card.LogoURL,
		Line:      card.Line,
		ShipName:  card.ShipName,
		ICalUID:   calendar.EventID(s),
	}
	if card.ShowRating {
		rating, reviews := card.Rating, card.Reviews
		dto.Rating = &rating
		dto.Reviews = &reviews
	}
	if card.ShowPrice {
		dto.PriceLabel = card.PriceLabel
	}
	return dto
}

// ToListingDTO converts a listing page to its response form.
func ToListingDTO(f *format.Formatter, page *domain.ListingPage) *ListingDTO {
	if page == nil {
		return nil
	}

	cards := make([]SailingCardDTO, len(page.Sailings))
	for i, s := range page.Sailings {
		cards[i] = ToSailingCardDTO(f, s)
	}

	return &ListingDTO{
		TotalResults: page.TotalResults,
		ResultLabel:  page.ResultLabel(),
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		HasPrev:      page.HasPrev(),
		HasNext:      page.HasNext(),
		Sort:         ToSortDTO(page.Sort),
		Pagination:   ToPageEntryDTOs(page.Window, page.Page),
		ScrollToTop:  page.ScrollToTop,
		Sailings:     cards,
	}
}

// ToSortOptionsDTO lists the selectable keys and directions.
func ToSortOptionsDTO() SortOptionsDTO {
	keys := domain.SortOptions()
	options := make([]SortOptionDTO, len(keys))
	for i, o := range keys {
		options[i] = SortOptionDTO{ID: string(o.ID), Label: o.Label}
	}

	return SortOptionsDTO{
		Options: options,
		Directions: []SortOptionDTO{
			{ID: string(domain.SortAsc), Label: domain.SortAsc.Label()},
			{ID: string(domain.SortDesc), Label: domain.SortDesc.Label()},
		},
		Default: ToSortDTO(domain.DefaultSort()),
	}
}
