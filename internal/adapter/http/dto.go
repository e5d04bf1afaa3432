package http

// ListingDTO is the data transfer object for one page of the sailing listing.
type ListingDTO struct {
	// TotalResults is the number of distinct sailings
	TotalResults int `json:"totalResults" example:"12"`

	// ResultLabel is the display text for TotalResults
	ResultLabel string `json:"resultLabel" example:"12 trips found"`

	// Page is the current 1-based page
	Page int `json:"page" example:"1"`

	// PageSize is the number of sailings per page
	PageSize int `json:"pageSize" example:"10"`

	// TotalPages is the number of pages (0 when there are no results)
	TotalPages int `json:"totalPages" example:"2"`

	// HasPrev and HasNext tell the surface whether to enable prev/next controls
	HasPrev bool `json:"hasPrev" example:"false"`
	HasNext bool `json:"hasNext" example:"true"`

	// Sort is the active ordering
	Sort SortDTO `json:"sort"`

	// Pagination is the compact page window
	Pagination []PageEntryDTO `json:"pagination"`

	// ScrollToTop asks the surface to scroll back to the top after a page change
	ScrollToTop bool `json:"scrollToTop" example:"false"`

	// Sailings are the cards on the current page
	Sailings []SailingCardDTO `json:"sailings"`
}

// SortDTO describes the active ordering.
type SortDTO struct {
	Key            string `json:"key" example:"departureDate"`
	Direction      string `json:"direction" example:"asc"`
	Label          string `json:"label" example:"Departure Date"`
	DirectionLabel string `json:"directionLabel" example:"Lowest first"`
}

// PageEntryDTO is one pagination control: a page number or an ellipsis.
type PageEntryDTO struct {
	Page     int  `json:"page,omitempty" example:"3"`
	Ellipsis bool `json:"ellipsis,omitempty" example:"false"`
	Current  bool `json:"current,omitempty" example:"false"`
}

// SailingCardDTO is the display form of one sailing.
type SailingCardDTO struct {
	Title      string   `json:"title" example:"5 Night Bahamas Cruise"`
	Region     string   `json:"region" example:"Bahamas"`
	Nights     int      `json:"nights" example:"5"`
	Rating     *float64 `json:"rating,omitempty" example:"4.2"`
	Reviews    *int     `json:"reviews,omitempty" example:"1830"`
	Route      []string `json:"route" example:"Miami,Nassau,Miami"`
	Price      float64  `json:"price" example:"610"`
	PriceLabel string   `json:"priceLabel,omitempty" example:"$610"`
	ImageURL   string   `json:"imageUrl" example:"/default_ship_image.jpg"`
	DateRange  string   `json:"dateRange" example:"Feb 10-15, 2024"`
	LogoURL    string   `json:"logoUrl" example:"/default_logo_image.jpg"`
	Line       string   `json:"line" example:"Royal Caribbean"`
	ShipName   string   `json:"shipName" example:"Majesty of the Seas"`
	ICalUID    string   `json:"icalUid" example:"1b4e28ba-2fa1-51d2-883f-0016d3cca427@sailing-listing"`
}

// SortOptionsDTO lists the selectable orderings.
type SortOptionsDTO struct {
	Options    []SortOptionDTO `json:"options"`
	Directions []SortOptionDTO `json:"directions"`
	Default    SortDTO         `json:"default"`
}

// SortOptionDTO is one selectable key or direction.
type SortOptionDTO struct {
	ID    string `json:"id" example:"price"`
	Label string `json:"label" example:"Price"`
}
